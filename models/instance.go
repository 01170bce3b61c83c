// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/binary"
	"errors"

	"github.com/google/uuid"
)

// instanceIDSize is the length of an encoded single-instance id:
// store GUID (16) + property tag (4) + content id (8).
const instanceIDSize = 16 + 4 + 8

// ErrMalformedInstanceID is returned when an instance id cannot be decoded.
var ErrMalformedInstanceID = errors.New("malformed single instance id")

// InstanceRef is a decoded single-instance reference: large content stored
// once by the store identified by StoreGUID and shared by several objects.
type InstanceRef struct {
	StoreGUID uuid.UUID
	Tag       PropTag
	ContentID uint64
}

// Encode serialises the reference into its wire form.
func (r InstanceRef) Encode() []byte {
	buf := make([]byte, instanceIDSize)
	copy(buf[:16], r.StoreGUID[:])
	binary.BigEndian.PutUint32(buf[16:20], uint32(r.Tag))
	binary.BigEndian.PutUint64(buf[20:], r.ContentID)
	return buf
}

// DecodeInstanceID parses the wire form produced by [InstanceRef.Encode].
func DecodeInstanceID(b []byte) (InstanceRef, error) {
	if len(b) != instanceIDSize {
		return InstanceRef{}, ErrMalformedInstanceID
	}

	var ref InstanceRef
	copy(ref.StoreGUID[:], b[:16])
	if ref.StoreGUID == uuid.Nil {
		return InstanceRef{}, ErrMalformedInstanceID
	}
	ref.Tag = PropTag(binary.BigEndian.Uint32(b[16:20]))
	ref.ContentID = binary.BigEndian.Uint64(b[20:])

	return ref, nil
}
