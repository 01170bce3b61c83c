// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-prop-sync/models"
)

// Sealer encrypts cached session ids. The profile name is bound to the
// ciphertext as additional data, so a row copied to another profile does
// not open.
type Sealer interface {
	Seal(plaintext, additional []byte) ([]byte, error)
	Open(blob, additional []byte) ([]byte, error)
}

// sealedSessionRepository stores session ids encrypted and hands them out
// in the clear.
type sealedSessionRepository struct {
	SessionRepository
	sealer Sealer
}

// NewSealedSessionRepository wraps next so that SessionID never reaches it
// in plaintext.
func NewSealedSessionRepository(next SessionRepository, sealer Sealer) SessionRepository {
	return &sealedSessionRepository{SessionRepository: next, sealer: sealer}
}

func (r *sealedSessionRepository) Get(ctx context.Context, profile string) (models.Session, error) {
	session, err := r.SessionRepository.Get(ctx, profile)
	if err != nil {
		return models.Session{}, err
	}

	blob, err := base64.StdEncoding.DecodeString(session.SessionID)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptedSession, err)
	}
	plain, err := r.sealer.Open(blob, []byte(profile))
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptedSession, err)
	}

	session.SessionID = string(plain)
	return session, nil
}

func (r *sealedSessionRepository) Save(ctx context.Context, session models.Session) error {
	blob, err := r.sealer.Seal([]byte(session.SessionID), []byte(session.Profile))
	if err != nil {
		return fmt.Errorf("seal session: %w", err)
	}

	session.SessionID = base64.StdEncoding.EncodeToString(blob)
	return r.SessionRepository.Save(ctx, session)
}
