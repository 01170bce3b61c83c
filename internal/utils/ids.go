// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// NewTraceID returns a ULID. Trace ids sort by creation time, which keeps
// the logs of one client readable.
func NewTraceID() string {
	return ulid.Make().String()
}

// NewTokenID returns a time-ordered UUIDv7, falling back to v4.
func NewTokenID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
