// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/utils"
)

// maxRequestBody bounds the bytes read for the integrity check.
const maxRequestBody = 32 << 20

// checkHash rejects requests whose body does not match the HMAC in the
// HashSHA256 header. The body is restored for the next handler.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" {
			log.Err(ErrMissingHash).Str("func", "*Handler.checkHash").Send()
			http.Error(w, ErrMissingHash.Error(), http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, signature) {
			log.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", signature).
				Str("hashed body", h.hasher.SumHex(body)).
				Msg("hashes are not equal")
			http.Error(w, ErrHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
