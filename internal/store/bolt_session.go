// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/models"
)

var bucketSessions = []byte("sessions")

// boltSessionRepository keeps one JSON document per profile in a bbolt
// bucket.
type boltSessionRepository struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltSessionRepository opens (or creates) the bbolt file at path.
func NewBoltSessionRepository(path string, logger *logger.Logger) (SessionRepository, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSessions)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create sessions bucket: %w", err)
	}

	logger.Debug().Str("path", path).Msg("creating bolt session repository")
	return &boltSessionRepository{db: db, logger: logger}, nil
}

func (r *boltSessionRepository) Get(_ context.Context, profile string) (models.Session, error) {
	var session models.Session

	err := r.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSessions).Get([]byte(profile))
		if data == nil {
			return ErrSessionNotFound
		}
		if err := json.Unmarshal(data, &session); err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptedSession, err)
		}
		return nil
	})
	if err != nil {
		return models.Session{}, err
	}

	return session, nil
}

func (r *boltSessionRepository) Save(_ context.Context, session models.Session) error {
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSessions).Put([]byte(session.Profile), data)
	})
}

func (r *boltSessionRepository) Delete(_ context.Context, profile string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSessions).Delete([]byte(profile))
	})
}

func (r *boltSessionRepository) Close() error {
	return r.db.Close()
}
