// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PropValue is a single tagged value on the wire.
type PropValue struct {
	Tag   PropTag `json:"tag"`
	Value any     `json:"value"`
}

// SaveObject is the wire form of a property object, used both for save
// requests and for load/save responses.
//
// In a save request DeletedTags and Modified carry the local deltas. In a
// response DeletedTags carries the tags the store reports as available and
// Modified carries the values it confirms or generated itself.
type SaveObject struct {
	ClientID    uint32       `json:"client_id"`
	ServerID    uint32       `json:"server_id,omitempty"`
	Type        ObjectType   `json:"type"`
	Delete      bool         `json:"delete,omitempty"`
	DeletedTags []PropTag    `json:"del_props,omitempty"`
	Modified    []PropValue  `json:"mod_props,omitempty"`
	InstanceID  []byte       `json:"instance_id,omitempty"`
	Children    []SaveObject `json:"children,omitempty"`
}

// FindChild returns the wire child with the given key, or nil.
func (s *SaveObject) FindChild(clientID uint32, typ ObjectType) *SaveObject {
	for i := range s.Children {
		if s.Children[i].ClientID == clientID && s.Children[i].Type == typ {
			return &s.Children[i]
		}
	}
	return nil
}

// NotifySubscribe asks the store to register a change notification for the
// loaded object. It is sent along with a load request.
type NotifySubscribe struct {
	Connection uint32 `json:"connection"`
	EventMask  uint32 `json:"event_mask"`
	Key        []byte `json:"key"`
}

// LoadObjectRequest is the body of a load call.
type LoadObjectRequest struct {
	EntryID   []byte           `json:"entry_id"`
	Subscribe *NotifySubscribe `json:"subscribe,omitempty"`
	Flags     uint32           `json:"flags"`
}

// SaveObjectRequest is the body of a save call.
type SaveObjectRequest struct {
	ParentEntryID []byte     `json:"parent_entry_id"`
	EntryID       []byte     `json:"entry_id"`
	Object        SaveObject `json:"object"`
	Flags         uint32     `json:"flags"`
	SyncID        uint32     `json:"sync_id"`
}

// ObjectResponse is returned by load and save calls.
type ObjectResponse struct {
	Er     ErrorCode  `json:"er"`
	Object SaveObject `json:"object"`
}

// LoadPropRequest asks for a single property of an object within an entry.
// ObjectID zero addresses the entry itself.
type LoadPropRequest struct {
	EntryID  []byte  `json:"entry_id"`
	ObjectID uint32  `json:"object_id"`
	Tag      PropTag `json:"tag"`
}

// LoadPropResponse carries a single property value.
type LoadPropResponse struct {
	Er    ErrorCode  `json:"er"`
	Value *PropValue `json:"value,omitempty"`
}

// ReadPropsRequest asks for the properties of an address book entry.
type ReadPropsRequest struct {
	EntryID []byte `json:"entry_id"`
}

// ReadPropsResponse carries the tags and values of an address book entry.
type ReadPropsResponse struct {
	Er     ErrorCode   `json:"er"`
	Type   ObjectType  `json:"type"`
	Tags   []PropTag   `json:"tags"`
	Values []PropValue `json:"values"`
}

// UnsubscribeRequest cancels a notification registered through a load.
type UnsubscribeRequest struct {
	Connection uint32 `json:"connection"`
}

// StatusResponse is the body of calls that only return an error code.
type StatusResponse struct {
	Er ErrorCode `json:"er"`
}
