// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Server capability bits announced at logon.
const (
	// CapLoadPropEntryID means LoadProp accepts object id 0, addressing the
	// entry itself.
	CapLoadPropEntryID uint32 = 1 << 0
	// CapSingleInstance means the store understands single-instance ids.
	CapSingleInstance uint32 = 1 << 1
)

// Credentials are kept by the client so that an expired session can be
// renewed without asking the user again.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LogonResponse is returned by a logon or relogon call.
type LogonResponse struct {
	Er           ErrorCode `json:"er"`
	SessionID    string    `json:"session_id"`
	ServerGUID   uuid.UUID `json:"server_guid"`
	Capabilities uint32    `json:"capabilities"`
}

// Session is the client-side view of an authenticated connection. It is
// cached per profile so that a restarted client can reuse it.
type Session struct {
	Profile      string    `json:"profile"`
	SessionID    string    `json:"session_id"`
	ServerGUID   uuid.UUID `json:"server_guid"`
	Capabilities uint32    `json:"capabilities"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Has reports whether the session's server announced capability bit.
func (s Session) Has(capability uint32) bool {
	return s.Capabilities&capability != 0
}
