// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/models"
)

// sqlSessionRepository is the SQLite-backed [SessionRepository]. Rows live
// in the "sessions" table created by the embedded migrations.
type sqlSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLSessionRepository wraps an already migrated database.
func NewSQLSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating sql session repository")
	return &sqlSessionRepository{db: db, logger: logger}
}

func (r *sqlSessionRepository) Get(ctx context.Context, profile string) (models.Session, error) {
	query, args, err := buildGetSessionQuery(profile)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session models.Session
		guid    string
		updated time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&session.Profile, &session.SessionID, &guid, &session.Capabilities, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sqlSessionRepository.Get").Str("profile", profile).Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if session.ServerGUID, err = uuid.Parse(guid); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptedSession, err)
	}
	session.UpdatedAt = updated

	return session, nil
}

func (r *sqlSessionRepository) Save(ctx context.Context, session models.Session) error {
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now().UTC()
	}

	query, args, err := buildUpsertSessionQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sqlSessionRepository.Save").Str("profile", session.Profile).Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *sqlSessionRepository) Delete(ctx context.Context, profile string) error {
	query, args, err := buildDeleteSessionQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *sqlSessionRepository) Close() error {
	return r.db.Close()
}
