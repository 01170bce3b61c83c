// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-prop-sync/internal/adapter"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/store"
	"github.com/MKhiriev/go-prop-sync/models"
	"github.com/google/uuid"
)

// maxAttempts bounds every retry loop: the first call and one retry.
const maxAttempts = 2

// remoteCall issues one request with the given session id and returns the
// store's error code.
type remoteCall func(ctx context.Context, session string) (models.ErrorCode, error)

// SessionGuard owns the session of one connection. All remote calls go
// through it, one at a time. An expired session is renewed once per call
// with the stored credentials.
type SessionGuard struct {
	mu sync.Mutex

	transport adapter.Transport
	sessions  store.SessionRepository

	profile     string
	credentials models.Credentials

	stateMu sync.RWMutex
	session models.Session

	now    func() time.Time
	logger *logger.Logger
}

func NewSessionGuard(
	transport adapter.Transport,
	sessions store.SessionRepository,
	profile string,
	credentials models.Credentials,
	logger *logger.Logger,
) *SessionGuard {
	return &SessionGuard{
		transport:   transport,
		sessions:    sessions,
		profile:     profile,
		credentials: credentials,
		session:     models.Session{Profile: profile},
		now:         time.Now,
		logger:      logger,
	}
}

// Resume loads the session cached for the profile. It reports false if there
// is none; the first call will then log on.
func (g *SessionGuard) Resume(ctx context.Context) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cached, err := g.sessions.Get(ctx, g.profile)
	if errors.Is(err, store.ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resume session: %w", err)
	}

	g.setSession(cached)
	g.logger.Debug().Str("func", "*SessionGuard.Resume").
		Str("profile", g.profile).
		Msg("cached session restored")
	return true, nil
}

// Logon authenticates with the stored credentials and replaces the session.
func (g *SessionGuard) Logon(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.transport.Connected() {
		return ErrNetwork
	}
	if err := g.logon(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	return nil
}

// Session returns a copy of the current session.
func (g *SessionGuard) Session() models.Session {
	g.stateMu.RLock()
	defer g.stateMu.RUnlock()
	return g.session
}

// StoreGUID implements [FingerprintSource].
func (g *SessionGuard) StoreGUID() uuid.UUID {
	return g.Session().ServerGUID
}

// Do runs call under the connection lock, renewing the session once if the
// store reports it expired. Non-zero codes are mapped to service errors.
func (g *SessionGuard) Do(ctx context.Context, call remoteCall) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.transport.Connected() {
		return ErrNetwork
	}

	code, err := g.call(ctx, call)
	if err != nil {
		return err
	}
	return mapErrorCode(code)
}

// DoSave is Do for save requests. If the store does not know an instance id
// in the request, reencode is run and the save retried once.
func (g *SessionGuard) DoSave(ctx context.Context, call remoteCall, reencode func()) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.transport.Connected() {
		return ErrNetwork
	}

	for attempt := range maxAttempts {
		code, err := g.call(ctx, call)
		if err != nil {
			return err
		}
		if code != models.CodeUnknownInstanceID {
			return mapErrorCode(code)
		}
		if attempt == maxAttempts-1 {
			break
		}

		g.logger.Warn().Str("func", "*SessionGuard.DoSave").
			Msg("store does not know the instance id, resending literal values")
		reencode()
	}

	return fmt.Errorf("%w: rejected after re-encode", ErrInvalidInstanceReference)
}

// call must be run with mu held.
func (g *SessionGuard) call(ctx context.Context, call remoteCall) (models.ErrorCode, error) {
	for attempt := range maxAttempts {
		code, err := call(ctx, g.Session().SessionID)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNetwork, err)
		}
		if code != models.CodeEndOfSession {
			return code, nil
		}
		if attempt == maxAttempts-1 {
			break
		}

		g.logger.Warn().Str("func", "*SessionGuard.call").
			Str("profile", g.profile).
			Msg("session expired, logging on again")
		if err = g.logon(ctx); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
		}
	}

	return 0, fmt.Errorf("%w: session expired again after relogon", ErrNotAuthenticated)
}

// logon must be run with mu held.
func (g *SessionGuard) logon(ctx context.Context) error {
	resp, err := g.transport.Logon(ctx, g.credentials)
	if err != nil {
		return fmt.Errorf("logon request: %w", err)
	}
	if resp.Er != models.CodeSuccess {
		return fmt.Errorf("logon: %s", resp.Er)
	}

	session := models.Session{
		Profile:      g.profile,
		SessionID:    resp.SessionID,
		ServerGUID:   resp.ServerGUID,
		Capabilities: resp.Capabilities,
		UpdatedAt:    g.now().UTC(),
	}
	g.setSession(session)

	if err = g.sessions.Save(ctx, session); err != nil {
		g.logger.Warn().Str("func", "*SessionGuard.logon").Err(err).
			Msg("failed to cache session")
	}
	return nil
}

func (g *SessionGuard) setSession(session models.Session) {
	g.stateMu.Lock()
	g.session = session
	g.stateMu.Unlock()
}
