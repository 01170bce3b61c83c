// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, saltLen)

	k1 := DeriveKey("correct horse battery staple", salt)
	k2 := DeriveKey("correct horse battery staple", salt)
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected equal keys for the same password and salt")
	}
	if len(k1) != keyLen {
		t.Fatalf("key length = %d, want %d", len(k1), keyLen)
	}

	if bytes.Equal(k1, DeriveKey("another password", salt)) {
		t.Fatalf("expected different keys for different passwords")
	}
	if bytes.Equal(k1, DeriveKey("correct horse battery staple", bytes.Repeat([]byte{0xCD}, saltLen))) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestProfileSalt(t *testing.T) {
	if got := len(ProfileSalt("alice")); got != saltLen {
		t.Fatalf("salt length = %d, want %d", got, saltLen)
	}
	if !bytes.Equal(ProfileSalt("alice"), ProfileSalt("alice")) {
		t.Fatalf("salt must be deterministic")
	}
	if bytes.Equal(ProfileSalt("alice"), ProfileSalt("bob")) {
		t.Fatalf("profiles must get different salts")
	}
}

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewProfileSealer("secret", "alice")
	if err != nil {
		t.Fatalf("NewProfileSealer error: %v", err)
	}

	plaintext := []byte("session-token")
	ad := []byte("alice")

	b1, err := s.Seal(plaintext, ad)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := s.Seal(plaintext, ad)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Equal(b1, b2) {
		t.Fatalf("expected different blobs for repeated Seal calls")
	}
	if bytes.Contains(b1, plaintext) {
		t.Fatalf("blob contains the plaintext")
	}

	got, err := s.Open(b1, ad)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Open = %q, want %q", got, plaintext)
	}
}

func TestSealer_OpenFailures(t *testing.T) {
	s, err := NewProfileSealer("secret", "alice")
	if err != nil {
		t.Fatalf("NewProfileSealer error: %v", err)
	}
	blob, err := s.Seal([]byte("session-token"), []byte("alice"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	wrong, err := NewProfileSealer("wrong", "alice")
	if err != nil {
		t.Fatalf("NewProfileSealer error: %v", err)
	}
	if _, err := wrong.Open(blob, []byte("alice")); err == nil {
		t.Fatalf("expected error for a wrong password")
	}

	if _, err := s.Open(blob, []byte("bob")); err == nil {
		t.Fatalf("expected error for different additional data")
	}

	tampered := append([]byte(nil), blob...)
	tampered[len(tampered)-1] ^= 0xFF
	if _, err := s.Open(tampered, []byte("alice")); err == nil {
		t.Fatalf("expected error for a tampered blob")
	}

	if _, err := s.Open([]byte{1, 2, 3}, nil); !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("Open short blob error = %v, want ErrCiphertextTooShort", err)
	}
}
