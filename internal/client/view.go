// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/hex"

	"github.com/MKhiriev/go-prop-sync/models"
)

// objectView is the printed form of a property object.
type objectView struct {
	ClientID   uint32         `json:"client_id"`
	ServerID   uint32         `json:"server_id"`
	Type       string         `json:"type"`
	Props      map[string]any `json:"props,omitempty"`
	Available  []string       `json:"available,omitempty"`
	InstanceID string         `json:"instance_id,omitempty"`
	Children   []objectView   `json:"children,omitempty"`
}

func newObjectView(o *models.PropertyObject) objectView {
	v := objectView{
		ClientID: o.ClientID,
		ServerID: o.ServerID,
		Type:     o.Type.String(),
		Props:    make(map[string]any),
	}

	for _, tag := range models.SortedTags(o.Available) {
		if value, ok := o.Get(tag); ok {
			v.Props[tag.String()] = value
			continue
		}
		v.Available = append(v.Available, tag.String())
	}
	for _, tag := range models.SortedTags(o.Modified) {
		v.Props[tag.String()] = o.Modified[tag]
	}
	if len(o.InstanceID) > 0 {
		v.InstanceID = hex.EncodeToString(o.InstanceID)
	}

	for _, child := range o.Children {
		v.Children = append(v.Children, newObjectView(child))
	}
	return v
}

// propView is the printed form of a single property.
type propView struct {
	Tag   string `json:"tag"`
	Value any    `json:"value"`
}
