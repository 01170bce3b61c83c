// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// every store route carries a signed body; requests that match no
	// route never reach the hash check
	router.Group(func(r chi.Router) {
		r.Use(h.checkHash)

		// routes without authorization
		r.Post("/api/session/logon", h.logon)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/api/object/load", h.loadObject)
			r.Post("/api/object/save", h.saveObject)
			r.Post("/api/object/prop", h.loadProp)
			r.Post("/api/ab/props", h.readABProps)
			r.Post("/api/notify/unsubscribe", h.unsubscribe)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
