// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-prop-sync/internal/config"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/utils"
	"github.com/MKhiriev/go-prop-sync/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Users are fixed at start-up; sessions live in memory until they expire,
// are revoked or the process exits.
type authService struct {
	// users maps a user name to its bcrypt password hash.
	users map[string]string

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session stays valid.
	tokenDuration time.Duration

	// storeGUID and capabilities are announced to every client at logon.
	storeGUID    uuid.UUID
	capabilities uint32

	mu sync.Mutex
	// sessions maps the jti of every live session to its expiry.
	sessions map[string]time.Time

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService for the users and the store
// identity in cfg.
func NewAuthService(cfg config.ServerConfig, logger *logger.Logger) AuthService {
	return &authService{
		users:         cfg.Store.Users,
		tokenSignKey:  cfg.App.TokenSignKey,
		tokenIssuer:   cfg.App.TokenIssuer,
		tokenDuration: cfg.App.TokenDuration,
		storeGUID:     cfg.Store.GUID,
		capabilities:  models.CapLoadPropEntryID | models.CapSingleInstance,
		sessions:      make(map[string]time.Time),
		now:           time.Now,
		logger:        logger,
	}
}

// Logon checks the credentials and opens a new session.
//
// Returns ErrWrongCredentials if the user is unknown or the password does
// not match its bcrypt hash.
func (a *authService) Logon(ctx context.Context, credentials models.Credentials) (models.LogonResponse, error) {
	log := logger.FromContext(ctx)

	hash, ok := a.users[credentials.Username]
	if !ok {
		log.Warn().Str("func", "*authService.Logon").Str("user", credentials.Username).Msg("unknown user")
		return models.LogonResponse{}, ErrWrongCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(credentials.Password)); err != nil {
		log.Warn().Str("func", "*authService.Logon").Str("user", credentials.Username).Msg("wrong password")
		return models.LogonResponse{}, ErrWrongCredentials
	}

	token, claims, err := utils.GenerateSessionToken(a.tokenIssuer, credentials.Username, utils.NewTokenID(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Logon").Msg("error generating session token")
		return models.LogonResponse{}, fmt.Errorf("error generating session token: %w", err)
	}

	a.mu.Lock()
	a.sessions[claims.ID] = claims.ExpiresAt
	a.mu.Unlock()

	log.Info().Str("user", claims.User).Str("jti", claims.ID).Time("expires_at", claims.ExpiresAt).Msg("session opened")

	return models.LogonResponse{
		Er:           models.CodeSuccess,
		SessionID:    token,
		ServerGUID:   a.storeGUID,
		Capabilities: a.capabilities,
	}, nil
}

// Authenticate validates a session token and checks that its session is
// still live. Any failure is reported as ErrSessionExpired.
func (a *authService) Authenticate(ctx context.Context, token string) (utils.SessionClaims, error) {
	claims, err := utils.ValidateSessionToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Str("func", "*authService.Authenticate").Err(err).Msg("invalid session token")
		return utils.SessionClaims{}, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	a.mu.Lock()
	expiresAt, ok := a.sessions[claims.ID]
	a.mu.Unlock()

	if !ok || !a.now().Before(expiresAt) {
		return utils.SessionClaims{}, ErrSessionExpired
	}

	return claims, nil
}

// Revoke ends the session with the given jti. Unknown ids are ignored.
func (a *authService) Revoke(ctx context.Context, sessionID string) {
	a.mu.Lock()
	delete(a.sessions, sessionID)
	a.mu.Unlock()

	logger.FromContext(ctx).Info().Str("jti", sessionID).Msg("session revoked")
}

// ReapExpired drops every session whose expiry has passed and returns how
// many were dropped.
func (a *authService) ReapExpired(ctx context.Context) int {
	now := a.now()

	a.mu.Lock()
	defer a.mu.Unlock()

	reaped := 0
	for id, expiresAt := range a.sessions {
		if !now.Before(expiresAt) {
			delete(a.sessions, id)
			reaped++
		}
	}

	if reaped > 0 {
		logger.FromContext(ctx).Debug().Str("func", "*authService.ReapExpired").
			Int("reaped", reaped).Int("live", len(a.sessions)).Msg("expired sessions dropped")
	}

	return reaped
}
