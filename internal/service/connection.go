// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"

	"github.com/MKhiriev/go-prop-sync/internal/adapter"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/store"
	"github.com/MKhiriev/go-prop-sync/models"
)

// Connection bundles the sync core for one connection to the store. Every
// storage opened from it shares the same session guard, so a relogon done
// for one of them is seen by all.
type Connection struct {
	Guard      *SessionGuard
	Encoder    *Encoder
	Reconciler *Reconciler

	transport adapter.Transport
	logger    *logger.Logger
}

func NewConnection(
	transport adapter.Transport,
	sessions store.SessionRepository,
	profile string,
	credentials models.Credentials,
	logger *logger.Logger,
) *Connection {
	guard := NewSessionGuard(transport, sessions, profile, credentials, logger)

	return &Connection{
		Guard:      guard,
		Encoder:    NewEncoder(NewInstanceResolver(guard, logger), logger),
		Reconciler: NewReconciler(logger),
		transport:  transport,
		logger:     logger,
	}
}

// OpenProps returns the storage of the object entryID, a child of
// parentEntryID. flags are passed to the store with every load and save.
func (c *Connection) OpenProps(parentEntryID, entryID []byte, flags uint32) PropStorage {
	return &propStorage{
		guard:         c.Guard,
		transport:     c.transport,
		encoder:       c.Encoder,
		reconciler:    c.Reconciler,
		parentEntryID: slices.Clone(parentEntryID),
		entryID:       slices.Clone(entryID),
		flags:         flags,
		logger:        c.logger,
	}
}

// OpenABProps returns a read-only storage of an address book entry.
func (c *Connection) OpenABProps(entryID []byte) PropStorage {
	return &abPropStorage{
		guard:     c.Guard,
		transport: c.transport,
		entryID:   slices.Clone(entryID),
	}
}

// Close releases the transport. Storages opened from c must not be used
// afterwards.
func (c *Connection) Close() error {
	return c.transport.Close()
}
