// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/models"
)

// InstanceResolver decides whether a single-instance reference can be sent
// as is. A reference is trusted only if it was issued by the store the client
// is connected to right now.
type InstanceResolver struct {
	source FingerprintSource
	logger *logger.Logger
}

func NewInstanceResolver(source FingerprintSource, logger *logger.Logger) *InstanceResolver {
	return &InstanceResolver{source: source, logger: logger}
}

// Validate decodes instanceID and compares its store GUID with the live one.
func (r *InstanceResolver) Validate(ctx context.Context, instanceID []byte) (models.InstanceRef, error) {
	ref, err := models.DecodeInstanceID(instanceID)
	if err != nil {
		return models.InstanceRef{}, fmt.Errorf("%w: %w", errInstanceRejected, err)
	}

	live := r.source.StoreGUID()
	if ref.StoreGUID != live {
		r.logger.Debug().Str("func", "*InstanceResolver.Validate").
			Str("instance_store", ref.StoreGUID.String()).
			Str("live_store", live.String()).
			Msg("instance id belongs to another store")
		return models.InstanceRef{}, fmt.Errorf("%w: issued by store %s", errInstanceRejected, ref.StoreGUID)
	}

	return ref, nil
}
