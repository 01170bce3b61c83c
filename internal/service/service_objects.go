// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/models"
	"github.com/google/uuid"
)

// singleInstanceIDs are the property ids whose content is stored once and
// shared through instance ids.
var singleInstanceIDs = []uint16{models.TagBody.ID(), models.TagAttachDataBin.ID()}

func isSingleInstance(tag models.PropTag) bool {
	return slices.Contains(singleInstanceIDs, tag.ID())
}

// storedObject is the server copy of a property object.
type storedObject struct {
	serverID uint32
	typ      models.ObjectType
	props    map[models.PropTag]any
	instance *models.InstanceRef
	children []*storedObject
}

func newStoredObject(typ models.ObjectType) *storedObject {
	return &storedObject{typ: typ, props: make(map[models.PropTag]any)}
}

// child returns the direct child with the given server id. o may be nil.
func (o *storedObject) child(serverID uint32) *storedObject {
	if o == nil {
		return nil
	}
	for _, c := range o.children {
		if c.serverID == serverID {
			return c
		}
	}
	return nil
}

// find searches the whole subtree of o.
func (o *storedObject) find(serverID uint32) *storedObject {
	if o.serverID == serverID {
		return o
	}
	for _, c := range o.children {
		if found := c.find(serverID); found != nil {
			return found
		}
	}
	return nil
}

func (o *storedObject) removeChild(serverID uint32) {
	o.children = slices.DeleteFunc(o.children, func(c *storedObject) bool {
		return c.serverID == serverID
	})
}

// toWire renders o the way a load returns it. Single-instance content is
// listed as available but not sent; LoadProp fetches it.
func (o *storedObject) toWire(clientID uint32) models.SaveObject {
	obj := models.SaveObject{ClientID: clientID, ServerID: o.serverID, Type: o.typ}

	for _, tag := range models.SortedTags(o.props) {
		if isSingleInstance(tag) {
			obj.DeletedTags = append(obj.DeletedTags, tag)
			continue
		}
		obj.Modified = append(obj.Modified, models.PropValue{Tag: tag, Value: o.props[tag]})
	}
	if o.instance != nil {
		obj.InstanceID = o.instance.Encode()
	}

	for _, c := range o.children {
		obj.Children = append(obj.Children, c.toWire(0))
	}

	return obj
}

type subscriptionKey struct {
	user       string
	connection uint32
}

type subscription struct {
	entryID   []byte
	eventMask uint32
	key       []byte
}

// objectService is an in-memory store of object trees. Entry ids are chosen
// by the client that creates an object; saving to an unknown entry id
// creates it.
type objectService struct {
	guid uuid.UUID

	mu            sync.Mutex
	lastServerID  uint32
	lastContentID uint64
	entries       map[string]*storedObject
	contents      map[uint64]any
	subscriptions map[subscriptionKey]subscription

	now    func() time.Time
	logger *logger.Logger
}

// NewObjectService returns an empty store identified by guid.
func NewObjectService(guid uuid.UUID, logger *logger.Logger) ObjectService {
	return &objectService{
		guid:          guid,
		entries:       make(map[string]*storedObject),
		contents:      make(map[uint64]any),
		subscriptions: make(map[subscriptionKey]subscription),
		now:           time.Now,
		logger:        logger,
	}
}

func (s *objectService) Load(ctx context.Context, user string, req models.LoadObjectRequest) models.ObjectResponse {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	root, ok := s.entries[hex.EncodeToString(req.EntryID)]
	if !ok {
		log.Debug().Str("func", "*objectService.Load").Hex("entry_id", req.EntryID).Msg("entry not found")
		return models.ObjectResponse{Er: models.CodeNotFound}
	}

	if req.Subscribe != nil {
		s.subscriptions[subscriptionKey{user: user, connection: req.Subscribe.Connection}] = subscription{
			entryID:   slices.Clone(req.EntryID),
			eventMask: req.Subscribe.EventMask,
			key:       slices.Clone(req.Subscribe.Key),
		}
		log.Debug().Str("func", "*objectService.Load").
			Uint32("connection", req.Subscribe.Connection).
			Msg("subscription registered")
	}

	return models.ObjectResponse{Er: models.CodeSuccess, Object: root.toWire(0)}
}

// Save applies the deltas of req to the stored tree. The request is checked
// in full before anything is changed.
func (s *objectService) Save(ctx context.Context, user string, req models.SaveObjectRequest) models.ObjectResponse {
	log := logger.FromContext(ctx)

	if len(req.EntryID) == 0 {
		return models.ObjectResponse{Er: models.CodeInvalidParameter}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := hex.EncodeToString(req.EntryID)
	root, exists := s.entries[key]
	switch {
	case !exists && req.Object.ServerID != 0:
		return models.ObjectResponse{Er: models.CodeNotFound}
	case exists && req.Object.ServerID != 0 && req.Object.ServerID != root.serverID:
		return models.ObjectResponse{Er: models.CodeCollision}
	}

	if code := s.validate(root, &req.Object); code != models.CodeSuccess {
		log.Warn().Str("func", "*objectService.Save").
			Hex("entry_id", req.EntryID).
			Stringer("code", code).
			Msg("save request rejected")
		return models.ObjectResponse{Er: code}
	}

	if req.Object.Delete {
		if exists {
			delete(s.entries, key)
		}
		log.Info().Str("user", user).Hex("entry_id", req.EntryID).Msg("entry deleted")
		return models.ObjectResponse{Er: models.CodeSuccess, Object: models.SaveObject{
			ClientID: req.Object.ClientID,
			ServerID: req.Object.ServerID,
			Type:     req.Object.Type,
		}}
	}

	if !exists {
		root = newStoredObject(req.Object.Type)
		s.entries[key] = root
	}
	obj := s.apply(root, &req.Object, s.now().UTC())

	log.Info().Str("user", user).
		Hex("entry_id", req.EntryID).
		Uint32("server_id", obj.ServerID).
		Uint32("sync_id", req.SyncID).
		Msg("entry saved")

	return models.ObjectResponse{Er: models.CodeSuccess, Object: obj}
}

// validate checks every instance id and every server id referenced by wire.
// stored is nil for objects the store has not seen yet.
func (s *objectService) validate(stored *storedObject, wire *models.SaveObject) models.ErrorCode {
	if len(wire.InstanceID) > 0 {
		ref, err := models.DecodeInstanceID(wire.InstanceID)
		if err != nil || ref.StoreGUID != s.guid || !isSingleInstance(ref.Tag) {
			return models.CodeUnknownInstanceID
		}
		if _, ok := s.contents[ref.ContentID]; !ok {
			return models.CodeUnknownInstanceID
		}
	}

	for i := range wire.Children {
		wc := &wire.Children[i]

		var sc *storedObject
		if wc.ServerID != 0 {
			if sc = stored.child(wc.ServerID); sc == nil {
				return models.CodeNotFound
			}
		}
		if code := s.validate(sc, wc); code != models.CodeSuccess {
			return code
		}
	}

	return models.CodeSuccess
}

// apply writes wire into o and returns the store's answer for it. wire must
// have passed validate.
func (s *objectService) apply(o *storedObject, wire *models.SaveObject, stamp time.Time) models.SaveObject {
	if o.serverID == 0 {
		s.lastServerID++
		o.serverID = s.lastServerID
	}

	resp := models.SaveObject{ClientID: wire.ClientID, ServerID: o.serverID, Type: o.typ}

	for _, tag := range wire.DeletedTags {
		delete(o.props, tag)
		if o.instance != nil && o.instance.Tag.ID() == tag.ID() {
			o.instance = nil
		}
	}

	if len(wire.InstanceID) > 0 {
		ref, _ := models.DecodeInstanceID(wire.InstanceID)
		o.props[ref.Tag] = s.contents[ref.ContentID]
		o.instance = &ref
	}

	for _, pv := range wire.Modified {
		o.props[pv.Tag] = pv.Value
		if isSingleInstance(pv.Tag) {
			s.lastContentID++
			s.contents[s.lastContentID] = pv.Value
			o.instance = &models.InstanceRef{StoreGUID: s.guid, Tag: pv.Tag, ContentID: s.lastContentID}
			continue
		}
		resp.Modified = append(resp.Modified, pv)
	}

	modified := stamp.Format(time.RFC3339Nano)
	o.props[models.TagLastModificationTime] = modified
	resp.Modified = append(resp.Modified, models.PropValue{Tag: models.TagLastModificationTime, Value: modified})

	if o.instance != nil {
		resp.InstanceID = o.instance.Encode()
		resp.DeletedTags = []models.PropTag{o.instance.Tag}
	}

	for i := range wire.Children {
		wc := &wire.Children[i]
		if wc.Delete {
			o.removeChild(wc.ServerID)
			continue
		}

		sc := o.child(wc.ServerID)
		if sc == nil {
			sc = newStoredObject(wc.Type)
			o.children = append(o.children, sc)
		}
		resp.Children = append(resp.Children, s.apply(sc, wc, stamp))
	}

	return resp
}

// LoadProp returns a single property of an entry or of one of its
// descendants. ObjectID zero addresses the entry.
func (s *objectService) LoadProp(ctx context.Context, user string, req models.LoadPropRequest) models.LoadPropResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	root, ok := s.entries[hex.EncodeToString(req.EntryID)]
	if !ok {
		return models.LoadPropResponse{Er: models.CodeNotFound}
	}

	obj := root
	if req.ObjectID != 0 {
		if obj = root.find(req.ObjectID); obj == nil {
			return models.LoadPropResponse{Er: models.CodeNotFound}
		}
	}

	value, ok := obj.props[req.Tag]
	if !ok {
		logger.FromContext(ctx).Debug().Str("func", "*objectService.LoadProp").
			Uint32("object_id", req.ObjectID).
			Str("tag", req.Tag.String()).
			Msg("property not found")
		return models.LoadPropResponse{Er: models.CodeNotFound}
	}

	return models.LoadPropResponse{Er: models.CodeSuccess, Value: &models.PropValue{Tag: req.Tag, Value: value}}
}

// Unsubscribe cancels a subscription the user registered through a load.
func (s *objectService) Unsubscribe(ctx context.Context, user string, req models.UnsubscribeRequest) models.StatusResponse {
	key := subscriptionKey{user: user, connection: req.Connection}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscriptions[key]; !ok {
		return models.StatusResponse{Er: models.CodeNotFound}
	}
	delete(s.subscriptions, key)

	logger.FromContext(ctx).Debug().Str("func", "*objectService.Unsubscribe").
		Uint32("connection", req.Connection).
		Msg("subscription cancelled")

	return models.StatusResponse{Er: models.CodeSuccess}
}
