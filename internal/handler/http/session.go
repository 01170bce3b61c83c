// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/service"
	"github.com/MKhiriev/go-prop-sync/internal/utils"
	"github.com/MKhiriev/go-prop-sync/models"
)

func (h *Handler) logon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r.Body, &credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Logon(ctx, credentials)
	if err != nil {
		if !errors.Is(err, service.ErrWrongCredentials) {
			log.Err(err).Msg("unexpected error occurred during logon")
		}
		h.respond(w, r, models.LogonResponse{Er: codeFromError(err)})
		return
	}

	h.respond(w, r, resp)
}
