// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
)

// BoltScheme prefixes DSNs served by the bbolt backend.
const BoltScheme = "bolt://"

// NewSessionRepository opens the session cache described by dsn:
//   - "" or ":memory:" keeps sessions in memory;
//   - "bolt://<path>" uses a bbolt file;
//   - anything else is a SQLite database, migrated on open.
func NewSessionRepository(ctx context.Context, dsn string, logger *logger.Logger) (SessionRepository, error) {
	switch {
	case dsn == "" || dsn == ":memory:":
		logger.Debug().Msg("using in-memory session cache")
		return NewMemorySessionRepository(), nil

	case strings.HasPrefix(dsn, BoltScheme):
		return NewBoltSessionRepository(strings.TrimPrefix(dsn, BoltScheme), logger)

	default:
		db, err := NewConnectSQLite(ctx, dsn, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLSessionRepository(db, logger), nil
	}
}
