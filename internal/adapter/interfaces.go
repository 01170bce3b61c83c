// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport between the sync core and the
// object store.
//
// The primary abstraction is [Transport], which decouples the service layer
// from the underlying protocol. The package ships a JSON over HTTP
// implementation ([NewHTTPTransport]).
//
// Store-level failures travel in the "er" field of every response and are
// interpreted by the caller. Transport-level failures (no answer, non-2xx
// status, broken signature) are returned as errors wrapping [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-prop-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport issues the remote calls of the sync core. Every call except
// Logon carries the session id obtained from the last logon.
type Transport interface {
	// Connected reports whether the transport can issue calls.
	Connected() bool

	// Logon authenticates and opens a new session. It is also used to
	// renew an expired one.
	Logon(ctx context.Context, credentials models.Credentials) (models.LogonResponse, error)

	// LoadObject fetches an object tree, optionally registering a change
	// notification on the way.
	LoadObject(ctx context.Context, session string, req models.LoadObjectRequest) (models.ObjectResponse, error)

	// SaveObject sends the deltas of an object tree and returns the store's
	// view of the saved objects.
	SaveObject(ctx context.Context, session string, req models.SaveObjectRequest) (models.ObjectResponse, error)

	// LoadProp fetches a single property.
	LoadProp(ctx context.Context, session string, req models.LoadPropRequest) (models.LoadPropResponse, error)

	// ReadABProps fetches the properties of an address book entry.
	ReadABProps(ctx context.Context, session string, req models.ReadPropsRequest) (models.ReadPropsResponse, error)

	// NotifyUnsubscribe cancels a notification registered by LoadObject.
	NotifyUnsubscribe(ctx context.Context, session string, req models.UnsubscribeRequest) (models.StatusResponse, error)

	// Close releases idle connections. Connected reports false afterwards.
	Close() error
}
