// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ErrorCode is the status code the store returns in the "er" field of every
// response. Zero means success.
type ErrorCode uint32

const (
	CodeSuccess           ErrorCode = 0
	CodeNotFound          ErrorCode = 0x80000002
	CodeNoAccess          ErrorCode = 0x80000003
	CodeNetworkError      ErrorCode = 0x80000004
	CodeNotEnoughMemory   ErrorCode = 0x8000000A
	CodeUnableToComplete  ErrorCode = 0x8000000E
	CodeEndOfSession      ErrorCode = 0x80000010
	CodeInvalidParameter  ErrorCode = 0x80000014
	CodeLogonFailed       ErrorCode = 0x80000017
	CodeUnknownInstanceID ErrorCode = 0x80000029
	CodeCollision         ErrorCode = 0x8000002A
)

var errorCodeNames = map[ErrorCode]string{
	CodeSuccess:           "success",
	CodeNotFound:          "not-found",
	CodeNoAccess:          "no-access",
	CodeNetworkError:      "network-error",
	CodeNotEnoughMemory:   "not-enough-memory",
	CodeUnableToComplete:  "unable-to-complete",
	CodeEndOfSession:      "session-expired",
	CodeInvalidParameter:  "invalid-parameter",
	CodeLogonFailed:       "logon-failed",
	CodeUnknownInstanceID: "unknown-instance-id",
	CodeCollision:         "collision",
}

// String returns the symbolic name of the code, or its hex value.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(c))
}
