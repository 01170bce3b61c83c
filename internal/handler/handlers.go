// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-prop-sync/internal/config"
	"github.com/MKhiriev/go-prop-sync/internal/handler/http"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTP.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg.App.HashKey, logger)}, nil
}
