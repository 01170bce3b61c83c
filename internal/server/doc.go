// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the reference store: the HTTP listener, which speaks
// HTTP/1.1 and cleartext HTTP/2, and the background workers, with signal
// handling and graceful shutdown.
package server
