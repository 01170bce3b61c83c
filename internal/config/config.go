// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the reference server. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and security settings.
	App App `envPrefix:"APP_"`

	// Storage holds the session cache settings of the client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the settings of the reference store server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the intervals of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flags.
	Args []string
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the session cache location.
	DB DB `envPrefix:"DB_"`
}

// App holds identity and security settings.
type App struct {
	// Profile names the cached session. Several profiles may share one cache.
	// Env: APP_PROFILE
	Profile string `env:"PROFILE"`

	// Username and Password are the credentials used for logon and relogon.
	// Env: APP_USERNAME, APP_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// HashKey is the HMAC key of the HashSHA256 request header.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// TokenSignKey signs the session tokens issued by the server.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session stays valid (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds the settings of the reference store server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StoreGUID is the identity of the store, embedded into every
	// single-instance id it issues. Env: SERVER_STORE_GUID
	StoreGUID string `env:"STORE_GUID"`

	// Users maps user names to bcrypt password hashes,
	// e.g. "alice:$2a$10$...,bob:$2a$10$...". Env: SERVER_USERS
	Users map[string]string `env:"USERS"`
}

// DB holds the session cache location.
type DB struct {
	// DSN is a SQLite file path, "bolt://<path>" for a bbolt file, or
	// ":memory:". Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the store server address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HTTP2 switches the client to an HTTP/2 transport.
	// Env: ADAPTER_HTTP2
	HTTP2 bool `env:"HTTP2"`
}

// Workers holds the intervals of background jobs.
type Workers struct {
	// SessionReapInterval is how often the server drops expired sessions.
	// Env: WORKERS_SESSION_REAP_INTERVAL
	SessionReapInterval time.Duration `env:"SESSION_REAP_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
