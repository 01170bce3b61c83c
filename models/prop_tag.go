// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// PropTag identifies a single typed attribute of a property object.
// The upper 16 bits hold the property id, the lower 16 bits the value type.
type PropTag uint32

// Property value types carried in the lower half of a [PropTag].
const (
	PropTypeLong    uint16 = 0x0003
	PropTypeBoolean uint16 = 0x000B
	PropTypeString  uint16 = 0x001F
	PropTypeTime    uint16 = 0x0040
	PropTypeBinary  uint16 = 0x0102
)

// Well-known tags used by the store and the tests.
const (
	TagSubject              = PropTag(0x0037<<16) | PropTag(PropTypeString)
	TagMessageClass         = PropTag(0x001A<<16) | PropTag(PropTypeString)
	TagBody                 = PropTag(0x1000<<16) | PropTag(PropTypeString)
	TagDisplayName          = PropTag(0x3001<<16) | PropTag(PropTypeString)
	TagEmailAddress         = PropTag(0x3003<<16) | PropTag(PropTypeString)
	TagRecipientType        = PropTag(0x0C15<<16) | PropTag(PropTypeLong)
	TagAttachFilename       = PropTag(0x3704<<16) | PropTag(PropTypeString)
	TagAttachDataBin        = PropTag(0x3701<<16) | PropTag(PropTypeBinary)
	TagLastModificationTime = PropTag(0x3008<<16) | PropTag(PropTypeTime)
)

// NewPropTag builds a tag from a property id and a value type.
func NewPropTag(id uint16, typ uint16) PropTag {
	return PropTag(uint32(id)<<16 | uint32(typ))
}

// ID returns the property id without the type.
func (t PropTag) ID() uint16 {
	return uint16(t >> 16)
}

// Type returns the value type of the tag.
func (t PropTag) Type() uint16 {
	return uint16(t & 0xFFFF)
}

// String renders the tag as 0x-prefixed hex.
func (t PropTag) String() string {
	return fmt.Sprintf("0x%08X", uint32(t))
}

// ParsePropTag accepts hex ("0x0037001F") or decimal input.
func ParsePropTag(s string) (PropTag, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("parse prop tag %q: %w", s, err)
	}

	return PropTag(v), nil
}

// ObjectType is the kind of a property object.
type ObjectType uint32

const (
	ObjectTypeStore       ObjectType = 1
	ObjectTypeFolder      ObjectType = 3
	ObjectTypeABContainer ObjectType = 4
	ObjectTypeMessage     ObjectType = 5
	ObjectTypeMailUser    ObjectType = 6
	ObjectTypeAttachment  ObjectType = 7
	ObjectTypeDistList    ObjectType = 8
)

// String returns a human-readable name of the object type.
func (o ObjectType) String() string {
	switch o {
	case ObjectTypeStore:
		return "store"
	case ObjectTypeFolder:
		return "folder"
	case ObjectTypeABContainer:
		return "ab_container"
	case ObjectTypeMessage:
		return "message"
	case ObjectTypeMailUser:
		return "mail_user"
	case ObjectTypeAttachment:
		return "attachment"
	case ObjectTypeDistList:
		return "dist_list"
	default:
		return "type_" + strconv.FormatUint(uint64(o), 10)
	}
}

// IsRecipient reports whether objects of this type live in a recipient table.
func (o ObjectType) IsRecipient() bool {
	return o == ObjectTypeMailUser || o == ObjectTypeDistList
}

// CounterType returns the type whose client id counter objects of type o
// draw from. Mail users and distribution lists share the recipient table,
// so both count as mail users.
func (o ObjectType) CounterType() ObjectType {
	if o.IsRecipient() {
		return ObjectTypeMailUser
	}
	return o
}
