// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/models"
)

// Reconciler merges the store's answer to a save back into the local tree.
type Reconciler struct {
	logger *logger.Logger
}

func NewReconciler(logger *logger.Logger) *Reconciler {
	return &Reconciler{logger: logger}
}

// Merge applies server to node. The whole response is checked before the
// first change, so on error node is untouched.
//
// Every changed child that was sent must be acknowledged by the store.
// Unchanged children were not sent and are left alone. Children pending
// deletion are dropped from the tree.
func (r *Reconciler) Merge(node *models.PropertyObject, server models.SaveObject) error {
	if node == nil {
		return fmt.Errorf("merge: %w: nil object", ErrInvalidParameter)
	}

	if err := checkAcknowledged(node, &server); err != nil {
		r.logger.Error().Str("func", "*Reconciler.Merge").Err(err).Msg("save response rejected")
		return err
	}

	apply(node, &server)
	r.logger.Debug().Str("func", "*Reconciler.Merge").
		Uint32("client_id", node.ClientID).
		Uint32("server_id", node.ServerID).
		Msg("save response merged")

	return nil
}

func checkAcknowledged(node *models.PropertyObject, server *models.SaveObject) error {
	for _, child := range node.Children {
		if child.MarkedDeleted || !child.Changed {
			continue
		}

		match := server.FindChild(child.ClientID, child.Type)
		if match == nil {
			return fmt.Errorf("%w: %s %d missing from save response",
				ErrProtocolViolation, child.Type, child.ClientID)
		}
		if err := checkAcknowledged(child, match); err != nil {
			return err
		}
	}
	return nil
}

func apply(node *models.PropertyObject, server *models.SaveObject) {
	if node.Available == nil {
		node.Available = make(map[models.PropTag]struct{})
	}
	if node.Baseline == nil {
		node.Baseline = make(map[models.PropTag]any)
	}

	node.ServerID = server.ServerID

	// Deletes are confirmed now; forget the old values before the store's
	// view is added on top.
	for tag := range node.Deleted {
		delete(node.Baseline, tag)
		delete(node.Available, tag)
	}
	clear(node.Deleted)
	clear(node.Modified)
	node.Changed = false

	for _, tag := range server.DeletedTags {
		node.Available[tag] = struct{}{}
	}
	for _, pv := range server.Modified {
		node.Baseline[pv.Tag] = pv.Value
		node.Available[pv.Tag] = struct{}{}
	}

	node.InstanceID = nil
	if len(server.InstanceID) > 0 {
		node.InstanceID = slices.Clone(server.InstanceID)
	}

	pruned := false
	for _, child := range node.Children {
		switch {
		case child.MarkedDeleted:
			pruned = true
		case child.Changed:
			apply(child, server.FindChild(child.ClientID, child.Type))
		}
	}
	if !pruned {
		return
	}

	node.Children = slices.DeleteFunc(node.Children, func(c *models.PropertyObject) bool {
		return c.MarkedDeleted
	})
	if len(node.Children) == 0 {
		node.Children = nil
	}
}
