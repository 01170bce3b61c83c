// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropTag_Parts(t *testing.T) {
	tag := NewPropTag(0x0037, PropTypeString)

	assert.Equal(t, TagSubject, tag)
	assert.Equal(t, uint16(0x0037), tag.ID())
	assert.Equal(t, PropTypeString, tag.Type())
	assert.Equal(t, "0x0037001F", tag.String())
}

func TestParsePropTag(t *testing.T) {
	tests := []struct {
		in      string
		want    PropTag
		wantErr bool
	}{
		{in: "0x0037001F", want: TagSubject},
		{in: "0X1000001f", want: TagBody},
		{in: " 3604511 ", want: TagSubject},
		{in: "0xZZ", wantErr: true},
		{in: "", wantErr: true},
		{in: "0x100000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePropTag(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectType_String(t *testing.T) {
	assert.Equal(t, "message", ObjectTypeMessage.String())
	assert.Equal(t, "attachment", ObjectTypeAttachment.String())
	assert.Equal(t, "type_42", ObjectType(42).String())
}

func TestObjectType_IsRecipient(t *testing.T) {
	assert.True(t, ObjectTypeMailUser.IsRecipient())
	assert.True(t, ObjectTypeDistList.IsRecipient())
	assert.False(t, ObjectTypeAttachment.IsRecipient())
}

func TestObjectType_CounterType(t *testing.T) {
	assert.Equal(t, ObjectTypeMailUser, ObjectTypeMailUser.CounterType())
	assert.Equal(t, ObjectTypeMailUser, ObjectTypeDistList.CounterType())
	assert.Equal(t, ObjectTypeAttachment, ObjectTypeAttachment.CounterType())
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "success", CodeSuccess.String())
	assert.Equal(t, "session-expired", CodeEndOfSession.String())
	assert.Equal(t, "unknown-instance-id", CodeUnknownInstanceID.String())
	assert.Equal(t, "0x80000999", ErrorCode(0x80000999).String())
}

func TestSession_Has(t *testing.T) {
	s := Session{Capabilities: CapSingleInstance}
	assert.True(t, s.Has(CapSingleInstance))
	assert.False(t, s.Has(CapLoadPropEntryID))
}
