// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"

	"github.com/MKhiriev/go-prop-sync/models"
)

// objectFromWire builds an unchanged local tree from a loaded object.
// Children get fresh client ids, counted per type. Recipients of either
// kind share one counter because they live in the same table.
func objectFromWire(obj models.SaveObject, clientID uint32) *models.PropertyObject {
	node := models.NewPropertyObject(obj.Type, clientID)
	node.ServerID = obj.ServerID

	for _, tag := range obj.DeletedTags {
		node.Available[tag] = struct{}{}
	}
	for _, pv := range obj.Modified {
		node.Baseline[pv.Tag] = pv.Value
		node.Available[pv.Tag] = struct{}{}
	}
	if len(obj.InstanceID) > 0 {
		node.InstanceID = slices.Clone(obj.InstanceID)
	}

	counters := make(map[models.ObjectType]uint32)
	for _, wire := range obj.Children {
		key := wire.Type.CounterType()
		id := counters[key]
		counters[key]++

		// Ids are unique per type, so AddChild cannot fail here.
		_ = node.AddChild(objectFromWire(wire, id))
	}

	return node
}
