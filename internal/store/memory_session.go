// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-prop-sync/models"
)

// memorySessionRepository forgets everything on exit. It backs tests and
// the ":memory:" DSN.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionRepository returns an empty in-memory repository.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]models.Session)}
}

func (r *memorySessionRepository) Get(_ context.Context, profile string) (models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[profile]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (r *memorySessionRepository) Save(_ context.Context, session models.Session) error {
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	r.sessions[session.Profile] = session
	r.mu.Unlock()
	return nil
}

func (r *memorySessionRepository) Delete(_ context.Context, profile string) error {
	r.mu.Lock()
	delete(r.sessions, profile)
	r.mu.Unlock()
	return nil
}

func (r *memorySessionRepository) Close() error {
	return nil
}
