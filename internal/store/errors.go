// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrSessionNotFound is returned by Get when no session is cached for the
// profile.
var ErrSessionNotFound = errors.New("session not found")

// Low-level database errors, wrapped with the driver error.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan session row")
	ErrCorruptedSession = errors.New("cached session is corrupted")
)
