// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/models"
)

// Every backend must behave the same way.
func TestSessionRepository_Backends(t *testing.T) {
	dir := t.TempDir()
	dsns := map[string]string{
		"memory": ":memory:",
		"bolt":   BoltScheme + filepath.Join(dir, "sessions.bolt"),
		"sqlite": filepath.Join(dir, "nested", "sessions.db"),
	}

	for name, dsn := range dsns {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo, err := NewSessionRepository(ctx, dsn, logger.Nop())
			require.NoError(t, err)
			defer func() { require.NoError(t, repo.Close()) }()

			_, err = repo.Get(ctx, "alice")
			require.ErrorIs(t, err, ErrSessionNotFound)

			first := models.Session{Profile: "alice", SessionID: "s1", ServerGUID: uuid.New(), Capabilities: models.CapSingleInstance}
			require.NoError(t, repo.Save(ctx, first))

			got, err := repo.Get(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, "s1", got.SessionID)
			assert.Equal(t, first.ServerGUID, got.ServerGUID)
			assert.True(t, got.Has(models.CapSingleInstance))
			assert.False(t, got.UpdatedAt.IsZero())

			// saving again replaces the previous session
			second := first
			second.SessionID = "s2"
			require.NoError(t, repo.Save(ctx, second))
			got, err = repo.Get(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, "s2", got.SessionID)

			require.NoError(t, repo.Delete(ctx, "alice"))
			require.NoError(t, repo.Delete(ctx, "alice"))
			_, err = repo.Get(ctx, "alice")
			assert.ErrorIs(t, err, ErrSessionNotFound)
		})
	}
}

func TestBoltSessionRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.bolt")

	repo, err := NewBoltSessionRepository(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, models.Session{Profile: "bob", SessionID: "kept", ServerGUID: uuid.New()}))
	require.NoError(t, repo.Close())

	repo, err = NewBoltSessionRepository(path, logger.Nop())
	require.NoError(t, err)
	defer repo.Close()

	got, err := repo.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "kept", got.SessionID)
}

func TestNewSessionRepository_BadBoltPath(t *testing.T) {
	_, err := NewSessionRepository(context.Background(), BoltScheme+filepath.Join(t.TempDir(), "missing", "x.bolt"), logger.Nop())
	assert.Error(t, err)
}
