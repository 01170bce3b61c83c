// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle of the reference store process.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is done.
	Run(ctx context.Context) error

	// Shutdown stops the listener and the background workers.
	Shutdown()
}
