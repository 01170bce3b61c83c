// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ServerApp holds the token and integrity settings of the store server.
type ServerApp struct {
	HashKey       string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerHTTP holds the listen settings of the store server.
type ServerHTTP struct {
	Address        string
	RequestTimeout time.Duration
}

// ServerStore holds the identity and the users of the store.
type ServerStore struct {
	GUID  uuid.UUID
	Users map[string]string
}

// ServerWorkers holds background job intervals.
type ServerWorkers struct {
	SessionReapInterval time.Duration
}

// ServerConfig is the server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	HTTP    ServerHTTP
	Store   ServerStore
	Workers ServerWorkers
}

// GetServerConfig builds and validates the server view from the merged
// structured configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	guid, err := uuid.Parse(cfg.Server.StoreGUID)
	if err != nil {
		return nil, fmt.Errorf("%w: store guid: %w", ErrInvalidServerConfigs, err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			HashKey:       cfg.App.HashKey,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		HTTP: ServerHTTP{
			Address:        cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Store: ServerStore{
			GUID:  guid,
			Users: cfg.Server.Users,
		},
		Workers: ServerWorkers{SessionReapInterval: cfg.Workers.SessionReapInterval},
	}

	return serverCfg, serverCfg.validate()
}
