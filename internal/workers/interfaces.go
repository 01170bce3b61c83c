// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the reference store.
package workers

import "context"

// Worker is a background job. Start launches it and returns at once; Stop
// cancels it and waits until it has exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// SessionReaper drops sessions that are no longer valid.
type SessionReaper interface {
	ReapExpired(ctx context.Context) int
}
