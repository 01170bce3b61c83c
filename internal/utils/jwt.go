// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	// User is the "sub" claim.
	User string
	// ID is the "jti" claim, unique per logon.
	ID        string
	ExpiresAt time.Time
}

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the store that issued the token
//   - Subject   (sub): the user name
//   - ID        (jti): id, so a single logon can be revoked
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus duration
//
// Example usage:
//
//	token, claims, err := utils.GenerateSessionToken("prop-sync", "alice", NewTokenID(), time.Hour, "secret")
func GenerateSessionToken(issuer, user, id string, duration time.Duration, signKey string) (string, SessionClaims, error) {
	if issuer == "" || user == "" || id == "" || duration <= 0 || signKey == "" {
		return "", SessionClaims{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   user,
		ID:        id,
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", SessionClaims{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, SessionClaims{User: user, ID: id, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ValidateSessionToken verifies the signature, issuer and expiry of
// tokenString and returns its claims.
func ValidateSessionToken(tokenString, signKey, issuer string) (SessionClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return SessionClaims{}, fmt.Errorf("error occurred validating session token: %w", err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return SessionClaims{}, errors.New("session token without subject or id")
	}

	return SessionClaims{User: claims.Subject, ID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// SessionExpiry reads the expiry of tokenString without verifying it.
// The client uses it for logging only.
func SessionExpiry(tokenString string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("session token without expiry")
	}
	return claims.ExpiresAt.Time, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}
