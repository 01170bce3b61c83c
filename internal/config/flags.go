// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// UserList collects "name:bcrypt-hash" pairs from repeated -user flags.
// It implements the flag.Value interface.
type UserList map[string]string

// ParseFlags parses the configuration flags in args, typically os.Args[1:].
// Arguments left after the flags are returned in Args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s store server address used by the client
//	-d session cache DSN
//	-c/-config json file path with configs
//	-profile session cache profile
//	-u/-p user name and password
//	-user name:bcrypt-hash, repeatable, server side
//	-store-guid store identity
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key request integrity hash key
//	-http2 use HTTP/2 towards the server
//	-reap-interval expired session reap interval
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("prop-sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var profile, username, password string
	users := UserList{}
	var storeGUID string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var http2 bool
	var reapInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Store server address")
	fs.StringVar(&databaseDSN, "d", "", "Session cache DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&profile, "profile", "", "Session cache profile")
	fs.StringVar(&username, "u", "", "User name")
	fs.StringVar(&password, "p", "", "Password")
	fs.Var(&users, "user", "Server user as name:bcrypt-hash (repeatable)")
	fs.StringVar(&storeGUID, "store-guid", "", "Store GUID")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.BoolVar(&http2, "http2", false, "Use HTTP/2 towards the server")
	fs.DurationVar(&reapInterval, "reap-interval", 0, "Expired session reap interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Profile:       profile,
			Username:      username,
			Password:      password,
			HashKey:       hashKey,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			StoreGUID:      storeGUID,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			HTTP2:          http2,
		},
		Workers: Workers{
			SessionReapInterval: reapInterval,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}
	if len(users) > 0 {
		cfg.Server.Users = users
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func (u UserList) String() string {
	names := make([]string, 0, len(u))
	for name := range u {
		names = append(names, name)
	}
	return strings.Join(names, ",")
}

// Set adds one "name:hash" pair.
func (u UserList) Set(s string) error {
	name, hash, ok := strings.Cut(s, ":")
	if !ok || name == "" || hash == "" {
		return errors.New("need user in a form `name:bcrypt-hash`")
	}

	u[name] = hash
	return nil
}
