// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/service"
	"github.com/MKhiriev/go-prop-sync/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher checks request bodies and signs response bodies.
	hasher *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(hashKey),
		logger:   logger,
	}
}

// respond writes data as a signed JSON body with status 200. Store level
// failures travel in the body's error code, not in the status.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK, h.hasher); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.respond").Msg("error writing response")
	}
}
