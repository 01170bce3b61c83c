// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors reported by the middleware. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader means the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not of the form
	// "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrMissingHash  = errors.New("missing `HashSHA256` header")
	ErrHashMismatch = errors.New("integrity check failed")
)
