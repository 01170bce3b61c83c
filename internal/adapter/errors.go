// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrTransport wraps every failure below the store protocol.
	ErrTransport = errors.New("transport failure")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("endpoint not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrBadSignature means the response body does not match its HashSHA256 header.
	ErrBadSignature = errors.New("response signature mismatch")
	ErrClosed       = errors.New("transport closed")
)
