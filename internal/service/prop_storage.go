// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-prop-sync/internal/adapter"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/models"
)

type propStorage struct {
	guard      *SessionGuard
	transport  adapter.Transport
	encoder    *Encoder
	reconciler *Reconciler

	parentEntryID []byte
	entryID       []byte
	flags         uint32
	syncID        uint32

	connection uint32
	eventMask  uint32
	subscribed bool

	logger *logger.Logger
}

// Load implements [PropStorage].
func (s *propStorage) Load(ctx context.Context) (*models.PropertyObject, error) {
	req := models.LoadObjectRequest{EntryID: s.entryID, Flags: s.flags}
	if s.connection != 0 && !s.subscribed {
		req.Subscribe = &models.NotifySubscribe{
			Connection: s.connection,
			EventMask:  s.eventMask,
			Key:        s.entryID,
		}
	}

	var resp models.ObjectResponse
	err := s.guard.Do(ctx, func(ctx context.Context, session string) (models.ErrorCode, error) {
		var err error
		resp, err = s.transport.LoadObject(ctx, session, req)
		return resp.Er, err
	})
	if err != nil {
		return nil, fmt.Errorf("load object: %w", err)
	}

	s.subscribed = s.connection != 0
	return objectFromWire(resp.Object, 0), nil
}

// Save implements [PropStorage].
func (s *propStorage) Save(ctx context.Context, node *models.PropertyObject) error {
	obj, err := s.encoder.Encode(ctx, node)
	if err != nil {
		return fmt.Errorf("save object: %w", err)
	}

	req := models.SaveObjectRequest{
		ParentEntryID: s.parentEntryID,
		EntryID:       s.entryID,
		Object:        obj,
		Flags:         s.flags,
		SyncID:        s.syncID,
	}

	var resp models.ObjectResponse
	err = s.guard.DoSave(ctx,
		func(ctx context.Context, session string) (models.ErrorCode, error) {
			var err error
			resp, err = s.transport.SaveObject(ctx, session, req)
			return resp.Er, err
		},
		func() {
			s.encoder.Reencode(node, &req.Object)
		},
	)
	if err != nil {
		return fmt.Errorf("save object: %w", err)
	}

	if err = s.reconciler.Merge(node, resp.Object); err != nil {
		return fmt.Errorf("save object: %w", err)
	}
	return nil
}

// LoadProp implements [PropStorage].
func (s *propStorage) LoadProp(ctx context.Context, objectID uint32, tag models.PropTag) (models.PropValue, error) {
	if objectID == 0 && !s.guard.Session().Has(models.CapLoadPropEntryID) {
		return models.PropValue{}, fmt.Errorf("load prop of entry: %w", ErrNoSupport)
	}

	req := models.LoadPropRequest{EntryID: s.entryID, ObjectID: objectID, Tag: tag}

	var resp models.LoadPropResponse
	err := s.guard.Do(ctx, func(ctx context.Context, session string) (models.ErrorCode, error) {
		var err error
		resp, err = s.transport.LoadProp(ctx, session, req)
		return resp.Er, err
	})
	if err != nil {
		return models.PropValue{}, fmt.Errorf("load prop %s: %w", tag, err)
	}
	if resp.Value == nil {
		return models.PropValue{}, fmt.Errorf("load prop %s: %w", tag, ErrNotFound)
	}

	return *resp.Value, nil
}

// Subscribe implements [PropStorage].
func (s *propStorage) Subscribe(connection, eventMask uint32) {
	s.connection = connection
	s.eventMask = eventMask
}

// SetSyncID implements [PropStorage].
func (s *propStorage) SetSyncID(syncID uint32) {
	s.syncID = syncID
}

// EntryID implements [PropStorage].
func (s *propStorage) EntryID() []byte {
	return slices.Clone(s.entryID)
}

// Close implements [PropStorage]. A failed unsubscribe is only logged: the
// store drops notifications of dead sessions by itself.
func (s *propStorage) Close(ctx context.Context) {
	if !s.subscribed {
		return
	}
	s.subscribed = false

	req := models.UnsubscribeRequest{Connection: s.connection}
	err := s.guard.Do(ctx, func(ctx context.Context, session string) (models.ErrorCode, error) {
		resp, err := s.transport.NotifyUnsubscribe(ctx, session, req)
		return resp.Er, err
	})
	if err != nil {
		s.logger.Warn().Str("func", "*propStorage.Close").Err(err).
			Uint32("connection", s.connection).
			Msg("failed to unsubscribe")
	}
}
