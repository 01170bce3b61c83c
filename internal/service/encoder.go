// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/models"
)

// Encoder turns the pending local changes of a tree into a save request.
// It never mutates the tree.
type Encoder struct {
	resolver *InstanceResolver
	logger   *logger.Logger
}

func NewEncoder(resolver *InstanceResolver, logger *logger.Logger) *Encoder {
	return &Encoder{resolver: resolver, logger: logger}
}

// Encode builds the wire object for node and the children that have
// something to tell the store.
func (e *Encoder) Encode(ctx context.Context, node *models.PropertyObject) (models.SaveObject, error) {
	if node == nil {
		return models.SaveObject{}, fmt.Errorf("encode: %w: nil object", ErrInvalidParameter)
	}

	obj := e.encode(ctx, node)
	e.logger.Debug().Str("func", "*Encoder.Encode").
		Uint32("client_id", node.ClientID).
		Uint32("server_id", node.ServerID).
		Int("children", len(obj.Children)).
		Msg("object encoded")

	return obj, nil
}

func (e *Encoder) encode(ctx context.Context, node *models.PropertyObject) models.SaveObject {
	obj := models.SaveObject{
		ClientID: node.ClientID,
		ServerID: node.ServerID,
		Type:     node.Type,
		Delete:   node.MarkedDeleted,
	}

	// Only one single-instance property per object is supported.
	var (
		sharedID  uint16
		hasShared bool
	)
	if len(node.InstanceID) > 0 {
		ref, err := e.resolver.Validate(ctx, node.InstanceID)
		if err == nil {
			obj.InstanceID = slices.Clone(node.InstanceID)
			sharedID, hasShared = ref.Tag.ID(), true
		} else {
			e.logger.Debug().Str("func", "*Encoder.encode").Err(err).
				Msg("sending single instance property as literal value")
		}
	}

	obj.DeletedTags = models.SortedTags(node.Deleted)
	for _, tag := range models.SortedTags(node.Modified) {
		if hasShared && tag.ID() == sharedID {
			continue
		}
		obj.Modified = append(obj.Modified, models.PropValue{Tag: tag, Value: node.Modified[tag]})
	}

	// Deleting an object removes its children on the store as well.
	if node.MarkedDeleted {
		return obj
	}

	for _, child := range node.Children {
		if !needsSave(child) {
			continue
		}
		obj.Children = append(obj.Children, e.encode(ctx, child))
	}

	return obj
}

// needsSave reports whether child has to appear in its parent's save request.
// A deleted child the store never saw is dropped silently.
func needsSave(child *models.PropertyObject) bool {
	if child.MarkedDeleted {
		return child.ServerID != 0
	}
	return child.Changed
}

// Reencode drops every single-instance reference in obj and sends the
// literal value of the property it stands for instead, when the node still
// holds one. It is used once the store has answered that it does not know an
// instance id. Without a local value the reference is dropped anyway and the
// store keeps whatever it has for that property.
func (e *Encoder) Reencode(node *models.PropertyObject, obj *models.SaveObject) {
	if len(obj.InstanceID) > 0 {
		e.reencodeInstance(node, obj)
	}

	for i := range obj.Children {
		wire := &obj.Children[i]
		child := node.Find(wire.ClientID, wire.Type)
		if child == nil {
			continue
		}
		e.Reencode(child, wire)
	}
}

func (e *Encoder) reencodeInstance(node *models.PropertyObject, obj *models.SaveObject) {
	ref, err := models.DecodeInstanceID(obj.InstanceID)
	obj.InstanceID = nil
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "*Encoder.Reencode").
			Uint32("client_id", node.ClientID).
			Msg("dropping undecodable single instance id")
		return
	}

	tag, value, ok := literalValue(node, ref.Tag)
	if !ok {
		e.logger.Warn().Str("func", "*Encoder.Reencode").
			Uint32("client_id", node.ClientID).
			Str("tag", ref.Tag.String()).
			Msg("no local value for single instance property, dropping the reference")
		return
	}
	obj.Modified = append(obj.Modified, models.PropValue{Tag: tag, Value: value})
}

// literalValue finds the pending write whose property id matches tag.
func literalValue(node *models.PropertyObject, tag models.PropTag) (models.PropTag, any, bool) {
	for _, t := range models.SortedTags(node.Modified) {
		if t.ID() == tag.ID() {
			return t, node.Modified[t], true
		}
	}
	return 0, nil, false
}
