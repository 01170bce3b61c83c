// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals secrets that the client keeps on disk.
//
// A [Sealer] derives an AES-256 key from the user's password with Argon2id
// and encrypts with AES-GCM. The output blob is nonce ‖ ciphertext, so every
// Seal call produces a different blob for the same input.
package crypto
