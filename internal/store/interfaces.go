// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client-side state between runs.
//
// The only state kept today is the last session per profile, so that a
// restarted client can reuse it instead of logging on again. Three
// backends implement [SessionRepository]: SQLite (the default), bbolt for
// "bolt://" DSNs and an in-memory map. [NewSessionRepository] picks one
// from the DSN. [NewSealedSessionRepository] wraps any of them so that
// session ids are encrypted at rest.
package store

import (
	"context"

	"github.com/MKhiriev/go-prop-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository keeps the last session opened for each profile.
type SessionRepository interface {
	// Get returns the cached session of profile, or ErrSessionNotFound.
	Get(ctx context.Context, profile string) (models.Session, error)
	// Save inserts or replaces the session of session.Profile.
	Save(ctx context.Context, session models.Session) error
	// Delete drops the cached session of profile. Deleting a missing
	// session is not an error.
	Delete(ctx context.Context, profile string) error
	// Close releases the underlying database.
	Close() error
}
