// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. The values follow the RFC 9106 second recommended
// option with a reduced memory cost so that a CLI start stays fast.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	keyLen       = 32
	saltLen      = 16
)

// saltDomain separates the salts of this package from any other use of the
// profile name.
const saltDomain = "prop-sync/session-sealer/v1:"

// ErrCiphertextTooShort is returned by Open when the blob cannot hold a nonce.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// Sealer encrypts and authenticates small secrets with a password-derived key.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives the key for password and salt and returns a ready Sealer.
func NewSealer(password string, salt []byte) (*Sealer, error) {
	key := DeriveKey(password, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &Sealer{aead: aead}, nil
}

// NewProfileSealer builds a Sealer whose salt is bound to the profile name.
// Two profiles sharing a password still get different keys.
func NewProfileSealer(password, profile string) (*Sealer, error) {
	return NewSealer(password, ProfileSalt(profile))
}

// ProfileSalt returns the deterministic salt used for profile.
func ProfileSalt(profile string) []byte {
	sum := sha256.Sum256([]byte(saltDomain + profile))
	return sum[:saltLen]
}

// DeriveKey computes the Argon2id key for password and salt.
func DeriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, keyLen)
}

// Seal encrypts plaintext. additional is authenticated but not encrypted;
// Open must be given the same value.
func (s *Sealer) Seal(plaintext, additional []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return s.aead.Seal(nonce, nonce, plaintext, additional), nil
}

// Open reverses Seal. A wrong password, a different additional value or a
// tampered blob all fail authentication.
func (s *Sealer) Open(blob, additional []byte) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, additional)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plaintext, nil
}
