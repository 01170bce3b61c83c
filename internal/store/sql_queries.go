// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prop-sync/models"
)

const sessionsTable = "sessions"

var sessionColumns = []string{"profile", "session_id", "server_guid", "capabilities", "updated_at"}

// SQLite uses "?" placeholders.
var statements = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetSessionQuery(profile string) (string, []any, error) {
	return statements.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"profile": profile}).
		ToSql()
}

func buildUpsertSessionQuery(session models.Session) (string, []any, error) {
	return statements.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			session.Profile,
			session.SessionID,
			session.ServerGUID.String(),
			session.Capabilities,
			session.UpdatedAt,
		).
		Suffix(`ON CONFLICT (profile) DO UPDATE SET
			session_id   = excluded.session_id,
			server_guid  = excluded.server_guid,
			capabilities = excluded.capabilities,
			updated_at   = excluded.updated_at`).
		ToSql()
}

func buildDeleteSessionQuery(profile string) (string, []any, error) {
	return statements.
		Delete(sessionsTable).
		Where(sq.Eq{"profile": profile}).
		ToSql()
}
