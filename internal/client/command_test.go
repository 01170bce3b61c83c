// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prop-sync/models"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    command
		wantErr error
	}{
		{
			name: "load only",
			args: []string{"0a0b"},
			want: command{kind: commandEdit, entryID: []byte{0x0A, 0x0B}},
		},
		{
			name: "set and delete",
			args: []string{"01", "0x0037001F=hello world", "!0x1000001F", "0x0C150003=2", "0x0E1F000B=true"},
			want: command{
				kind:    commandEdit,
				entryID: []byte{0x01},
				sets: []models.PropValue{
					{Tag: models.TagSubject, Value: "hello world"},
					{Tag: models.TagRecipientType, Value: int64(2)},
					{Tag: models.NewPropTag(0x0E1F, models.PropTypeBoolean), Value: true},
				},
				deletes: []models.PropTag{models.TagBody},
			},
		},
		{
			name: "value may contain equals",
			args: []string{"01", "0x0037001F=a=b"},
			want: command{
				kind:    commandEdit,
				entryID: []byte{0x01},
				sets:    []models.PropValue{{Tag: models.TagSubject, Value: "a=b"}},
			},
		},
		{
			name: "prop of entry",
			args: []string{"prop", "ff", "0x1000001F"},
			want: command{kind: commandProp, entryID: []byte{0xFF}, tag: models.TagBody},
		},
		{
			name: "prop of child",
			args: []string{"prop", "ff", "0x37010102", "3"},
			want: command{kind: commandProp, entryID: []byte{0xFF}, tag: models.TagAttachDataBin, objectID: 3},
		},
		{
			name: "address book",
			args: []string{"ab", "alice"},
			want: command{kind: commandAB, entryID: []byte("alice")},
		},
		{name: "no args", args: nil, wantErr: ErrUsage},
		{name: "entry id not hex", args: []string{"xyz"}, wantErr: ErrUsage},
		{name: "edit without equals", args: []string{"01", "0x0037001F"}, wantErr: ErrUsage},
		{name: "ab without name", args: []string{"ab"}, wantErr: ErrUsage},
		{name: "prop without tag", args: []string{"prop", "01"}, wantErr: ErrUsage},
		{name: "bad long value", args: []string{"01", "0x0C150003=two"}, wantErr: ErrInvalidValue},
		{name: "bad bool value", args: []string{"01", "0x0E1F000B=maybe"}, wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommand(tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_BadTag(t *testing.T) {
	_, err := parseCommand([]string{"01", "subject=x"})
	require.Error(t, err)

	_, err = parseCommand([]string{"prop", "01", "0x1000001F", "-1"})
	require.Error(t, err)
}
