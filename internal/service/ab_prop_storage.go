// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-prop-sync/internal/adapter"
	"github.com/MKhiriev/go-prop-sync/models"
)

// abPropStorage gives read-only access to address book entries.
type abPropStorage struct {
	guard     *SessionGuard
	transport adapter.Transport
	entryID   []byte
}

// Load implements [PropStorage]. Address book entries have no children.
func (s *abPropStorage) Load(ctx context.Context) (*models.PropertyObject, error) {
	req := models.ReadPropsRequest{EntryID: s.entryID}

	var resp models.ReadPropsResponse
	err := s.guard.Do(ctx, func(ctx context.Context, session string) (models.ErrorCode, error) {
		var err error
		resp, err = s.transport.ReadABProps(ctx, session, req)
		return resp.Er, err
	})
	if err != nil {
		return nil, fmt.Errorf("read address book props: %w", err)
	}

	node := models.NewPropertyObject(resp.Type, 0)
	for _, tag := range resp.Tags {
		node.Available[tag] = struct{}{}
	}
	for _, pv := range resp.Values {
		node.Baseline[pv.Tag] = pv.Value
	}
	return node, nil
}

// Save implements [PropStorage]. The address book is read-only.
func (s *abPropStorage) Save(context.Context, *models.PropertyObject) error {
	return fmt.Errorf("save address book entry: %w", ErrNoSupport)
}

// LoadProp implements [PropStorage].
func (s *abPropStorage) LoadProp(context.Context, uint32, models.PropTag) (models.PropValue, error) {
	return models.PropValue{}, fmt.Errorf("load address book prop: %w", ErrNoSupport)
}

func (s *abPropStorage) Subscribe(uint32, uint32) {}

func (s *abPropStorage) SetSyncID(uint32) {}

// EntryID implements [PropStorage].
func (s *abPropStorage) EntryID() []byte {
	return slices.Clone(s.entryID)
}

func (s *abPropStorage) Close(context.Context) {}
