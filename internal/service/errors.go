// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Errors surfaced to callers of the sync core. Match them with [errors.Is].
var (
	ErrNetwork                  = errors.New("network error")
	ErrNotAuthenticated         = errors.New("not authenticated")
	ErrNotFound                 = errors.New("object not found")
	ErrInvalidInstanceReference = errors.New("invalid single instance reference")
	ErrProtocolViolation        = errors.New("protocol violation")
	ErrOutOfMemory              = errors.New("out of memory")

	ErrNoSupport        = errors.New("operation not supported")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// errInstanceRejected makes the encoder fall back to literal transfer.
// It never leaves the package.
var errInstanceRejected = errors.New("single instance reference rejected")

// Errors of the reference store services.
var (
	ErrWrongCredentials = errors.New("wrong user name or password")
	ErrSessionExpired   = errors.New("session expired or revoked")
)
