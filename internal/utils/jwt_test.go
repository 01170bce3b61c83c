// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	signed, claims, err := GenerateSessionToken("test-issuer", "alice", "jti-1", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if signed == "" {
		t.Fatal("expected non-empty token")
	}
	if claims.User != "alice" || claims.ID != "jti-1" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if time.Until(claims.ExpiresAt) <= 0 {
		t.Error("expected expiry in the future")
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     string
		id       string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "alice", "id", time.Hour, "key"},
		{"empty user", "iss", "", "id", time.Hour, "key"},
		{"empty id", "iss", "alice", "", time.Hour, "key"},
		{"zero duration", "iss", "alice", "id", 0, "key"},
		{"empty key", "iss", "alice", "id", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := GenerateSessionToken(tt.issuer, tt.user, tt.id, tt.duration, tt.key); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateSessionToken_RoundTrip(t *testing.T) {
	signed, _, err := GenerateSessionToken("iss", "alice", "jti-1", time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateSessionToken(signed, "key", "iss")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.User != "alice" || claims.ID != "jti-1" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateSessionToken_Rejects(t *testing.T) {
	signed, _, err := GenerateSessionToken("iss", "alice", "jti-1", time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err = ValidateSessionToken(signed, "other-key", "iss"); err == nil {
		t.Error("expected error for wrong key")
	}
	if _, err = ValidateSessionToken(signed, "key", "other-iss"); err == nil {
		t.Error("expected error for wrong issuer")
	}
	if _, err = ValidateSessionToken("not-a-token", "key", "iss"); err == nil {
		t.Error("expected error for garbage")
	}
}

func TestValidateSessionToken_Expired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice",
		ID:        "jti-1",
		ExpiresAt: jwt.NewNumericDate(past),
		IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err = ValidateSessionToken(signed, "key", "iss"); err == nil {
		t.Fatal("expected error for expired token")
	}

	exp, err := SessionExpiry(signed)
	if err != nil {
		t.Fatalf("expected expiry of expired token to be readable, got: %v", err)
	}
	if !exp.Equal(past.Truncate(time.Second)) {
		t.Errorf("expected expiry %v, got %v", past.Truncate(time.Second), exp)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def", want: "abc.def"},
		{header: "bearer abc", want: "abc"},
		{header: "Bearer ", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("expected %q, got %q (err=%v)", tt.want, got, err)
			}
		})
	}
}
