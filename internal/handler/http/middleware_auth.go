// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/utils"
	"github.com/MKhiriev/go-prop-sync/models"
)

// auth enforces a live session.
//
// The bearer token is checked with [service.AuthService.Authenticate]. A
// missing, malformed, expired or revoked token is answered with status 200
// and the end-of-session error code, which makes the client log on again
// and retry. On success the user and the session id are stored in the
// request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			h.respond(w, r, models.StatusResponse{Er: models.CodeEndOfSession})
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			h.respond(w, r, models.StatusResponse{Er: models.CodeEndOfSession})
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			log.Info().Err(err).Msg("session rejected")
			h.respond(w, r, models.StatusResponse{Er: codeFromError(err)})
			return
		}

		ctx = utils.WithSession(ctx, claims.User, claims.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
