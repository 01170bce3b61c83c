// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used by the client and the
// store server: context keys, HMAC hashing, JSON responses, HTTP clients,
// session tokens and identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey holds the name of the user an authenticated request belongs to.
var UserCtxKey = contextKey("user")

// SessionIDCtxKey holds the session token id (jti) of an authenticated request.
var SessionIDCtxKey = contextKey("sessionID")

// WithSession stores the user name and the session id in ctx.
func WithSession(ctx context.Context, user, sessionID string) context.Context {
	ctx = context.WithValue(ctx, UserCtxKey, user)
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetUserFromContext retrieves the user name stored by [WithSession].
func GetUserFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(UserCtxKey).(string)
	return user, ok && user != ""
}

// GetSessionIDFromContext retrieves the session id stored by [WithSession].
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDCtxKey).(string)
	return id, ok && id != ""
}
