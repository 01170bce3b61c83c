// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/utils"
	"github.com/MKhiriev/go-prop-sync/models"
)

// decode reads the JSON body into v. On failure it answers 400 and
// returns false.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeJSON(r.Body, v); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) loadObject(w http.ResponseWriter, r *http.Request) {
	var req models.LoadObjectRequest
	if !decode(w, r, &req) {
		return
	}

	user, _ := utils.GetUserFromContext(r.Context())
	h.respond(w, r, h.services.ObjectService.Load(r.Context(), user, req))
}

func (h *Handler) saveObject(w http.ResponseWriter, r *http.Request) {
	var req models.SaveObjectRequest
	if !decode(w, r, &req) {
		return
	}

	user, _ := utils.GetUserFromContext(r.Context())
	h.respond(w, r, h.services.ObjectService.Save(r.Context(), user, req))
}

func (h *Handler) loadProp(w http.ResponseWriter, r *http.Request) {
	var req models.LoadPropRequest
	if !decode(w, r, &req) {
		return
	}

	user, _ := utils.GetUserFromContext(r.Context())
	h.respond(w, r, h.services.ObjectService.LoadProp(r.Context(), user, req))
}

func (h *Handler) unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req models.UnsubscribeRequest
	if !decode(w, r, &req) {
		return
	}

	user, _ := utils.GetUserFromContext(r.Context())
	h.respond(w, r, h.services.ObjectService.Unsubscribe(r.Context(), user, req))
}

func (h *Handler) readABProps(w http.ResponseWriter, r *http.Request) {
	var req models.ReadPropsRequest
	if !decode(w, r, &req) {
		return
	}

	h.respond(w, r, h.services.AddressBookService.ReadProps(r.Context(), req))
}
