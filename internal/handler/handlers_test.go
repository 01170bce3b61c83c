// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prop-sync/internal/config"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/service"
)

func TestNewHandlers(t *testing.T) {
	cfg := config.ServerConfig{
		App:  config.ServerApp{HashKey: "key"},
		HTTP: config.ServerHTTP{Address: "localhost:8080"},
	}

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	_, err := NewHandlers(&service.Services{}, config.ServerConfig{}, logger.Nop())
	require.ErrorIs(t, err, errNoHandlersAreCreated)
}
