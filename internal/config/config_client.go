// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the identity the client logs on with.
type ClientApp struct {
	Profile  string
	Username string
	Password string

	// HashKey is the HMAC key used for payload integrity headers.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	HTTP2          bool
}

// ClientStorage holds the session cache location.
type ClientStorage struct {
	DSN string
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage

	// Args are the positional command-line arguments.
	Args []string
}

// GetClientConfig builds and validates the client view from the merged
// structured configuration. A missing profile defaults to the user name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Profile:  cfg.App.Profile,
			Username: cfg.App.Username,
			Password: cfg.App.Password,
			HashKey:  cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			HTTP2:          cfg.Adapter.HTTP2,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DB.DSN},
		Args:    cfg.Args,
	}
	if clientCfg.App.Profile == "" {
		clientCfg.App.Profile = clientCfg.App.Username
	}

	return clientCfg, clientCfg.validate()
}
