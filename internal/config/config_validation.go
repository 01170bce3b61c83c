// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/google/uuid"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.App.Username == "" || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTP.Address == "" || cfg.HTTP.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Store.GUID == uuid.Nil || len(cfg.Store.Users) == 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.Workers.SessionReapInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}
