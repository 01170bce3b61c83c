// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"maps"
	"slices"
)

// ErrDuplicateChild is returned by [PropertyObject.AddChild] when a child with
// the same (ClientID, Type) key already exists under the parent.
var ErrDuplicateChild = errors.New("child with the same client id and type already exists")

// PropertyObject is one node of the in-memory object tree: a message, one of
// its attachments or recipients, or any other property-bearing object.
//
// A node exclusively owns its children. Children are addressed by the compound
// key (ClientID, Type); there is no parent back-pointer.
//
// Pending local edits live in Deleted and Modified until a successful save
// moves the server-confirmed state into Baseline and Available.
type PropertyObject struct {
	// ClientID is assigned locally and is unique among siblings of the same Type.
	ClientID uint32

	// ServerID is the identifier assigned by the store. Zero means the object
	// was never persisted.
	ServerID uint32

	// Type is the kind of the object.
	Type ObjectType

	// Available holds every tag known to exist on the object.
	Available map[PropTag]struct{}

	// Deleted holds tags removed locally since the last sync.
	Deleted map[PropTag]struct{}

	// Modified holds local writes since the last sync.
	Modified map[PropTag]any

	// Baseline holds values confirmed by a load or a save.
	Baseline map[PropTag]any

	// Children are owned by this node.
	Children []*PropertyObject

	// Changed is true if any local mutation happened since the last sync.
	Changed bool

	// MarkedDeleted is true if the node and its subtree are pending deletion.
	MarkedDeleted bool

	// InstanceID is the encoded single-instance reference for one of the
	// object's large properties, see [InstanceRef].
	InstanceID []byte

	nextClientID map[ObjectType]uint32
}

// NewPropertyObject returns an empty node carrying only its key.
func NewPropertyObject(typ ObjectType, clientID uint32) *PropertyObject {
	return &PropertyObject{
		ClientID:  clientID,
		Type:      typ,
		Available: make(map[PropTag]struct{}),
		Deleted:   make(map[PropTag]struct{}),
		Modified:  make(map[PropTag]any),
		Baseline:  make(map[PropTag]any),
	}
}

// Set records a pending write of tag. A pending delete of the same tag is dropped.
func (o *PropertyObject) Set(tag PropTag, value any) {
	o.ensureMaps()
	delete(o.Deleted, tag)
	o.Modified[tag] = value
	o.Changed = true
}

// Delete records a pending removal of tag. A pending write of the same tag is dropped.
func (o *PropertyObject) Delete(tag PropTag) {
	o.ensureMaps()
	delete(o.Modified, tag)
	o.Deleted[tag] = struct{}{}
	o.Changed = true
}

// Get returns the effective value of tag: a pending write wins over the
// baseline and a pending delete hides both.
func (o *PropertyObject) Get(tag PropTag) (any, bool) {
	if _, gone := o.Deleted[tag]; gone {
		return nil, false
	}
	if v, ok := o.Modified[tag]; ok {
		return v, true
	}
	v, ok := o.Baseline[tag]
	return v, ok
}

// MarkDeleted flags the node and its whole subtree for deletion.
func (o *PropertyObject) MarkDeleted() {
	o.MarkedDeleted = true
	o.Changed = true
	for _, child := range o.Children {
		child.MarkDeleted()
	}
}

// CreateChild appends a new empty child of typ and returns its client id.
// The id is the next free one among existing siblings of the same type;
// recipients of either kind share one sequence.
func (o *PropertyObject) CreateChild(typ ObjectType) uint32 {
	id := o.nextID(typ)

	child := NewPropertyObject(typ, id)
	child.Changed = true
	o.Children = append(o.Children, child)
	o.Changed = true

	return id
}

// AddChild attaches an existing node, typically one built from a server load.
// The child's Changed flag is left as is.
func (o *PropertyObject) AddChild(child *PropertyObject) error {
	if o.Find(child.ClientID, child.Type) != nil {
		return ErrDuplicateChild
	}

	if o.nextClientID == nil {
		o.nextClientID = make(map[ObjectType]uint32)
	}
	key := child.Type.CounterType()
	if child.ClientID >= o.nextClientID[key] {
		o.nextClientID[key] = child.ClientID + 1
	}

	o.Children = append(o.Children, child)
	return nil
}

// Find returns the child with the given key, or nil.
func (o *PropertyObject) Find(clientID uint32, typ ObjectType) *PropertyObject {
	for _, child := range o.Children {
		if child.ClientID == clientID && child.Type == typ {
			return child
		}
	}
	return nil
}

// RemoveChild detaches the child with the given key from the tree without
// notifying the store. It reports whether a child was removed.
func (o *PropertyObject) RemoveChild(clientID uint32, typ ObjectType) bool {
	idx := slices.IndexFunc(o.Children, func(c *PropertyObject) bool {
		return c.ClientID == clientID && c.Type == typ
	})
	if idx < 0 {
		return false
	}

	o.Children = slices.Delete(o.Children, idx, idx+1)
	return true
}

// Clone returns a deep copy of the subtree rooted at o.
func (o *PropertyObject) Clone() *PropertyObject {
	c := &PropertyObject{
		ClientID:      o.ClientID,
		ServerID:      o.ServerID,
		Type:          o.Type,
		Available:     maps.Clone(o.Available),
		Deleted:       maps.Clone(o.Deleted),
		Modified:      maps.Clone(o.Modified),
		Baseline:      maps.Clone(o.Baseline),
		Changed:       o.Changed,
		MarkedDeleted: o.MarkedDeleted,
		InstanceID:    slices.Clone(o.InstanceID),
		nextClientID:  maps.Clone(o.nextClientID),
	}
	c.ensureMaps()

	for _, child := range o.Children {
		c.Children = append(c.Children, child.Clone())
	}
	return c
}

func (o *PropertyObject) nextID(typ ObjectType) uint32 {
	if o.nextClientID == nil {
		o.nextClientID = make(map[ObjectType]uint32)
	}

	key := typ.CounterType()
	id := o.nextClientID[key]
	for o.idTaken(id, key) {
		id++
	}
	o.nextClientID[key] = id + 1

	return id
}

func (o *PropertyObject) idTaken(id uint32, key ObjectType) bool {
	return slices.ContainsFunc(o.Children, func(c *PropertyObject) bool {
		return c.ClientID == id && c.Type.CounterType() == key
	})
}

func (o *PropertyObject) ensureMaps() {
	if o.Available == nil {
		o.Available = make(map[PropTag]struct{})
	}
	if o.Deleted == nil {
		o.Deleted = make(map[PropTag]struct{})
	}
	if o.Modified == nil {
		o.Modified = make(map[PropTag]any)
	}
	if o.Baseline == nil {
		o.Baseline = make(map[PropTag]any)
	}
}

// SortedTags returns the keys of a tag set or tag map in ascending order.
func SortedTags[V any](m map[PropTag]V) []PropTag {
	return slices.Sorted(maps.Keys(m))
}
