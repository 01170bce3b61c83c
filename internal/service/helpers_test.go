// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/mock"
	"github.com/MKhiriev/go-prop-sync/internal/store"
	"github.com/MKhiriev/go-prop-sync/models"
)

// fixedFingerprint is a FingerprintSource with a constant store GUID.
type fixedFingerprint uuid.UUID

func (f fixedFingerprint) StoreGUID() uuid.UUID { return uuid.UUID(f) }

var testCredentials = models.Credentials{Username: "alice", Password: "secret"}

func newTestEncoder(live uuid.UUID) *Encoder {
	return NewEncoder(NewInstanceResolver(fixedFingerprint(live), logger.Nop()), logger.Nop())
}

// newTestConnection wires a Connection to a mocked transport and an
// in-memory session cache.
func newTestConnection(t *testing.T, ctrl *gomock.Controller) (*Connection, *mock.MockTransport, store.SessionRepository) {
	t.Helper()
	transport := mock.NewMockTransport(ctrl)
	sessions := store.NewMemorySessionRepository()

	conn := NewConnection(transport, sessions, "alice", testCredentials, logger.Nop())
	return conn, transport, sessions
}

// logonAs opens a session on conn with the given id and store GUID.
func logonAs(t *testing.T, conn *Connection, transport *mock.MockTransport, sessionID string, guid uuid.UUID, caps uint32) {
	t.Helper()
	transport.EXPECT().Connected().Return(true)
	transport.EXPECT().Logon(gomock.Any(), testCredentials).Return(models.LogonResponse{
		SessionID:    sessionID,
		ServerGUID:   guid,
		Capabilities: caps,
	}, nil)

	require.NoError(t, conn.Guard.Logon(context.Background()))
}

func instanceID(guid uuid.UUID, tag models.PropTag) []byte {
	return models.InstanceRef{StoreGUID: guid, Tag: tag, ContentID: 7}.Encode()
}
