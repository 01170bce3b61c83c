// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-prop-sync/internal/utils"
	"github.com/MKhiriev/go-prop-sync/models"
	"github.com/google/uuid"
)

// PropStorage loads and saves one object tree identified by an entry id.
// Calls on storages that share a connection are serialised by the
// connection's [SessionGuard].
type PropStorage interface {
	// Load fetches the object and converts it into an unchanged local tree.
	// A pending subscription is sent along with the request.
	Load(ctx context.Context) (*models.PropertyObject, error)

	// Save sends the local deltas of node and merges the store's answer back
	// into it. On error node is left exactly as it was.
	Save(ctx context.Context, node *models.PropertyObject) error

	// LoadProp fetches a single property of the object or one of its
	// children. objectID zero addresses the object itself.
	LoadProp(ctx context.Context, objectID uint32, tag models.PropTag) (models.PropValue, error)

	// Subscribe registers a change notification. Nothing is sent until the
	// next Load.
	Subscribe(connection, eventMask uint32)

	SetSyncID(syncID uint32)
	EntryID() []byte

	// Close cancels the notification registered through Load, if any.
	Close(ctx context.Context)
}

// FingerprintSource reports the identity of the store the client is
// currently connected to.
type FingerprintSource interface {
	StoreGUID() uuid.UUID
}

// AuthService checks user credentials and keeps track of the sessions the
// reference store has issued.
type AuthService interface {
	// Logon opens a session. The session id in the response is a signed
	// token the client sends back as a bearer token.
	Logon(ctx context.Context, credentials models.Credentials) (models.LogonResponse, error)

	// Authenticate returns the claims of a live session, or
	// ErrSessionExpired.
	Authenticate(ctx context.Context, token string) (utils.SessionClaims, error)

	Revoke(ctx context.Context, sessionID string)

	// ReapExpired forgets expired sessions and returns how many there were.
	ReapExpired(ctx context.Context) int
}

// ObjectService stores object trees on behalf of authenticated users.
// Results are reported through the error code of each response.
type ObjectService interface {
	Load(ctx context.Context, user string, req models.LoadObjectRequest) models.ObjectResponse
	Save(ctx context.Context, user string, req models.SaveObjectRequest) models.ObjectResponse
	LoadProp(ctx context.Context, user string, req models.LoadPropRequest) models.LoadPropResponse
	Unsubscribe(ctx context.Context, user string, req models.UnsubscribeRequest) models.StatusResponse
}

// AddressBookService reads address book entries.
type AddressBookService interface {
	ReadProps(ctx context.Context, req models.ReadPropsRequest) models.ReadPropsResponse
}
