// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prop-sync/models"
)

var testStorageEntryID = []byte{0xEE, 0x01}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestPropStorage_Load_BuildsTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	logonAs(t, conn, transport, "s1", uuid.New(), 0)
	props := conn.OpenProps([]byte{0xF0}, testStorageEntryID, 0x10)

	transport.EXPECT().Connected().Return(true)
	transport.EXPECT().LoadObject(gomock.Any(), "s1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.LoadObjectRequest) (models.ObjectResponse, error) {
			assert.Equal(t, testStorageEntryID, req.EntryID)
			assert.Equal(t, uint32(0x10), req.Flags)
			assert.Nil(t, req.Subscribe)
			return models.ObjectResponse{Object: models.SaveObject{
				ServerID:    1,
				Type:        models.ObjectTypeMessage,
				DeletedTags: []models.PropTag{models.TagBody},
				Modified:    []models.PropValue{{Tag: models.TagSubject, Value: "hello"}},
				Children: []models.SaveObject{
					{ServerID: 2, Type: models.ObjectTypeAttachment},
					{ServerID: 3, Type: models.ObjectTypeMailUser},
					{ServerID: 4, Type: models.ObjectTypeDistList},
					{ServerID: 5, Type: models.ObjectTypeAttachment},
				},
			}}, nil
		})

	node, err := props.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint32(1), node.ServerID)
	assert.False(t, node.Changed)
	assert.Equal(t, "hello", node.Baseline[models.TagSubject])
	assert.Contains(t, node.Available, models.TagBody)
	assert.Contains(t, node.Available, models.TagSubject)

	require.Len(t, node.Children, 4)
	assert.Equal(t, uint32(2), node.Find(0, models.ObjectTypeAttachment).ServerID)
	assert.Equal(t, uint32(5), node.Find(1, models.ObjectTypeAttachment).ServerID)
	assert.Equal(t, uint32(3), node.Find(0, models.ObjectTypeMailUser).ServerID)
	// recipients share one counter
	assert.Equal(t, uint32(4), node.Find(1, models.ObjectTypeDistList).ServerID)

	// a new child gets the next free id
	assert.Equal(t, uint32(2), node.CreateChild(models.ObjectTypeAttachment))
	// new recipients continue the shared sequence
	assert.Equal(t, uint32(2), node.CreateChild(models.ObjectTypeDistList))
	assert.Equal(t, uint32(3), node.CreateChild(models.ObjectTypeMailUser))
}

func TestPropStorage_Load_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	props := conn.OpenProps(nil, testStorageEntryID, 0)

	transport.EXPECT().Connected().Return(true)
	transport.EXPECT().LoadObject(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ObjectResponse{Er: models.CodeNotFound}, nil)

	_, err := props.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Subscribe / Close ────────────────────────────────────────────────────────

func TestPropStorage_SubscriptionRidesOnLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	props := conn.OpenProps(nil, testStorageEntryID, 0)
	props.Subscribe(7, 0x3)

	var subscriptions []*models.NotifySubscribe
	transport.EXPECT().Connected().Return(true).Times(3)
	transport.EXPECT().LoadObject(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.LoadObjectRequest) (models.ObjectResponse, error) {
			subscriptions = append(subscriptions, req.Subscribe)
			return models.ObjectResponse{Object: models.SaveObject{ServerID: 1}}, nil
		}).Times(2)
	transport.EXPECT().NotifyUnsubscribe(gomock.Any(), gomock.Any(), models.UnsubscribeRequest{Connection: 7}).
		Return(models.StatusResponse{}, nil)

	ctx := context.Background()
	_, err := props.Load(ctx)
	require.NoError(t, err)
	_, err = props.Load(ctx)
	require.NoError(t, err)

	require.Len(t, subscriptions, 2)
	require.NotNil(t, subscriptions[0])
	assert.Equal(t, uint32(7), subscriptions[0].Connection)
	assert.Equal(t, uint32(0x3), subscriptions[0].EventMask)
	assert.Equal(t, testStorageEntryID, subscriptions[0].Key)
	assert.Nil(t, subscriptions[1], "subscription is sent once")

	props.Close(ctx)
	// already unsubscribed: no second call
	props.Close(ctx)
}

func TestPropStorage_Close_WithoutSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, _, _ := newTestConnection(t, ctrl)
	props := conn.OpenProps(nil, testStorageEntryID, 0)
	props.Subscribe(7, 1)

	// never loaded, so nothing was registered on the store
	props.Close(context.Background())
}

func TestPropStorage_Close_UnsubscribeErrorSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	props := conn.OpenProps(nil, testStorageEntryID, 0)
	props.Subscribe(7, 1)

	transport.EXPECT().Connected().Return(true).Times(2)
	transport.EXPECT().LoadObject(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ObjectResponse{}, nil)
	transport.EXPECT().NotifyUnsubscribe(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.StatusResponse{}, errors.New("connection reset"))

	_, err := props.Load(context.Background())
	require.NoError(t, err)
	props.Close(context.Background())
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestPropStorage_Save_NewMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	logonAs(t, conn, transport, "s1", uuid.New(), 0)
	props := conn.OpenProps([]byte{0xF0}, nil, 0)
	props.SetSyncID(99)

	msg := models.NewPropertyObject(models.ObjectTypeMessage, 0)
	msg.Set(models.TagSubject, "hi")

	transport.EXPECT().Connected().Return(true)
	transport.EXPECT().SaveObject(gomock.Any(), "s1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.SaveObjectRequest) (models.ObjectResponse, error) {
			assert.Equal(t, []byte{0xF0}, req.ParentEntryID)
			assert.Equal(t, uint32(99), req.SyncID)
			assert.Equal(t, []models.PropValue{{Tag: models.TagSubject, Value: "hi"}}, req.Object.Modified)
			return models.ObjectResponse{Object: models.SaveObject{
				ServerID: 500,
				Type:     models.ObjectTypeMessage,
				Modified: []models.PropValue{{Tag: models.TagSubject, Value: "hi"}},
			}}, nil
		})

	require.NoError(t, props.Save(context.Background(), msg))

	assert.Empty(t, msg.Modified)
	assert.Empty(t, msg.Deleted)
	assert.NotZero(t, msg.ServerID)
	assert.False(t, msg.Changed)
}

func TestPropStorage_Save_StaleInstanceSentAsLiteral(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	logonAs(t, conn, transport, "s1", uuid.New(), models.CapSingleInstance)
	props := conn.OpenProps(nil, testStorageEntryID, 0)

	msg := models.NewPropertyObject(models.ObjectTypeMessage, 0)
	msg.ServerID = 1
	msg.Set(models.TagBody, "copied from another store")
	msg.InstanceID = instanceID(uuid.New(), models.TagBody)

	transport.EXPECT().Connected().Return(true)
	transport.EXPECT().SaveObject(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.SaveObjectRequest) (models.ObjectResponse, error) {
			assert.Empty(t, req.Object.InstanceID)
			assert.Equal(t, []models.PropValue{{Tag: models.TagBody, Value: "copied from another store"}}, req.Object.Modified)
			return models.ObjectResponse{Object: models.SaveObject{ServerID: 1}}, nil
		})

	require.NoError(t, props.Save(context.Background(), msg))
	assert.Nil(t, msg.InstanceID)
}

func TestPropStorage_Save_UnknownInstanceRetriedWithLiteral(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	guid := uuid.New()
	logonAs(t, conn, transport, "s1", guid, models.CapSingleInstance)
	props := conn.OpenProps(nil, testStorageEntryID, 0)

	msg := models.NewPropertyObject(models.ObjectTypeMessage, 0)
	msg.ServerID = 1
	att := msg.Find(msg.CreateChild(models.ObjectTypeAttachment), models.ObjectTypeAttachment)
	att.Set(models.TagAttachDataBin, []byte("payload"))
	att.InstanceID = instanceID(guid, models.TagAttachDataBin)

	// the request is reused between attempts, so record what each one carried
	type attempt struct {
		instanceID []byte
		modified   []models.PropValue
	}
	var sent []attempt
	transport.EXPECT().Connected().Return(true)
	transport.EXPECT().SaveObject(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.SaveObjectRequest) (models.ObjectResponse, error) {
			child := req.Object.Children[0]
			sent = append(sent, attempt{
				instanceID: slices.Clone(child.InstanceID),
				modified:   slices.Clone(child.Modified),
			})
			if len(sent) == 1 {
				return models.ObjectResponse{Er: models.CodeUnknownInstanceID}, nil
			}
			return models.ObjectResponse{Object: models.SaveObject{
				ServerID: 1,
				Children: []models.SaveObject{{ClientID: 0, ServerID: 2, Type: models.ObjectTypeAttachment}},
			}}, nil
		}).Times(2)

	require.NoError(t, props.Save(context.Background(), msg))

	require.Len(t, sent, 2)
	assert.NotEmpty(t, sent[0].instanceID)
	assert.Empty(t, sent[0].modified)
	assert.Empty(t, sent[1].instanceID)
	assert.Equal(t, []models.PropValue{{Tag: models.TagAttachDataBin, Value: []byte("payload")}}, sent[1].modified)
	assert.Equal(t, uint32(2), att.ServerID)
}

func TestPropStorage_Save_UnknownInstanceRetriedWithoutLocalValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	guid := uuid.New()
	logonAs(t, conn, transport, "s1", guid, models.CapSingleInstance)
	props := conn.OpenProps(nil, testStorageEntryID, 0)

	// a loaded message whose body is shared content; only the subject is edited
	msg := models.NewPropertyObject(models.ObjectTypeMessage, 0)
	msg.ServerID = 1
	msg.Available[models.TagBody] = struct{}{}
	msg.InstanceID = instanceID(guid, models.TagBody)
	msg.Set(models.TagSubject, "hi")

	type attempt struct {
		instanceID []byte
		modified   []models.PropValue
	}
	var sent []attempt
	transport.EXPECT().Connected().Return(true)
	transport.EXPECT().SaveObject(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.SaveObjectRequest) (models.ObjectResponse, error) {
			sent = append(sent, attempt{
				instanceID: slices.Clone(req.Object.InstanceID),
				modified:   slices.Clone(req.Object.Modified),
			})
			if len(sent) == 1 {
				return models.ObjectResponse{Er: models.CodeUnknownInstanceID}, nil
			}
			return models.ObjectResponse{Object: models.SaveObject{
				ServerID:    1,
				Type:        models.ObjectTypeMessage,
				DeletedTags: []models.PropTag{models.TagBody},
				Modified:    []models.PropValue{{Tag: models.TagSubject, Value: "hi"}},
			}}, nil
		}).Times(2)

	require.NoError(t, props.Save(context.Background(), msg))

	require.Len(t, sent, 2)
	assert.NotEmpty(t, sent[0].instanceID)
	assert.Empty(t, sent[1].instanceID)
	assert.Equal(t, []models.PropValue{{Tag: models.TagSubject, Value: "hi"}}, sent[1].modified)
	assert.False(t, msg.Changed)
	assert.Equal(t, "hi", msg.Baseline[models.TagSubject])
}

func TestPropStorage_Save_ProtocolViolationKeepsTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	props := conn.OpenProps(nil, testStorageEntryID, 0)

	msg := models.NewPropertyObject(models.ObjectTypeMessage, 0)
	msg.Find(msg.CreateChild(models.ObjectTypeMailUser), models.ObjectTypeMailUser).
		Set(models.TagEmailAddress, "bob@example.com")
	before := msg.Clone()

	transport.EXPECT().Connected().Return(true)
	transport.EXPECT().SaveObject(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ObjectResponse{Object: models.SaveObject{ServerID: 1}}, nil)

	err := props.Save(context.Background(), msg)

	assert.ErrorIs(t, err, ErrProtocolViolation)
	assert.Equal(t, before, msg)
}

func TestPropStorage_Save_NetworkErrorKeepsTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	props := conn.OpenProps(nil, testStorageEntryID, 0)

	msg := models.NewPropertyObject(models.ObjectTypeMessage, 0)
	msg.Set(models.TagSubject, "hi")
	before := msg.Clone()

	transport.EXPECT().Connected().Return(true)
	transport.EXPECT().SaveObject(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ObjectResponse{}, errors.New("timeout"))

	err := props.Save(context.Background(), msg)

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, before, msg)
}

// ── LoadProp ─────────────────────────────────────────────────────────────────

func TestPropStorage_LoadProp(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	logonAs(t, conn, transport, "s1", uuid.New(), models.CapLoadPropEntryID)
	props := conn.OpenProps(nil, testStorageEntryID, 0)

	transport.EXPECT().Connected().Return(true).Times(2)
	transport.EXPECT().LoadProp(gomock.Any(), "s1", models.LoadPropRequest{EntryID: testStorageEntryID, ObjectID: 0, Tag: models.TagBody}).
		Return(models.LoadPropResponse{Value: &models.PropValue{Tag: models.TagBody, Value: "text"}}, nil)
	transport.EXPECT().LoadProp(gomock.Any(), "s1", models.LoadPropRequest{EntryID: testStorageEntryID, ObjectID: 3, Tag: models.TagAttachDataBin}).
		Return(models.LoadPropResponse{}, nil)

	pv, err := props.LoadProp(context.Background(), 0, models.TagBody)
	require.NoError(t, err)
	assert.Equal(t, "text", pv.Value)

	_, err = props.LoadProp(context.Background(), 3, models.TagAttachDataBin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPropStorage_LoadProp_EntryNeedsCapability(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	logonAs(t, conn, transport, "s1", uuid.New(), 0)
	props := conn.OpenProps(nil, testStorageEntryID, 0)

	_, err := props.LoadProp(context.Background(), 0, models.TagBody)
	assert.ErrorIs(t, err, ErrNoSupport)
}

func TestPropStorage_EntryIDIsCopied(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, _, _ := newTestConnection(t, ctrl)
	entry := []byte{1, 2, 3}
	props := conn.OpenProps(nil, entry, 0)

	entry[0] = 9
	got := props.EntryID()
	assert.Equal(t, []byte{1, 2, 3}, got)

	got[1] = 9
	assert.Equal(t, []byte{1, 2, 3}, props.EntryID())
}

// ── address book ─────────────────────────────────────────────────────────────

func TestABPropStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)
	props := conn.OpenABProps([]byte{0xAB})

	transport.EXPECT().Connected().Return(true)
	transport.EXPECT().ReadABProps(gomock.Any(), gomock.Any(), models.ReadPropsRequest{EntryID: []byte{0xAB}}).
		Return(models.ReadPropsResponse{
			Type:   models.ObjectTypeMailUser,
			Tags:   []models.PropTag{models.TagDisplayName, models.TagEmailAddress},
			Values: []models.PropValue{{Tag: models.TagDisplayName, Value: "Bob"}},
		}, nil)

	ctx := context.Background()
	node, err := props.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ObjectTypeMailUser, node.Type)
	assert.Len(t, node.Available, 2)
	assert.Equal(t, "Bob", node.Baseline[models.TagDisplayName])
	assert.Empty(t, node.Children)

	assert.ErrorIs(t, props.Save(ctx, node), ErrNoSupport)
	_, err = props.LoadProp(ctx, 0, models.TagDisplayName)
	assert.ErrorIs(t, err, ErrNoSupport)

	props.Subscribe(1, 1)
	props.SetSyncID(1)
	props.Close(ctx)
	assert.Equal(t, []byte{0xAB}, props.EntryID())
}

func TestConnection_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn, transport, _ := newTestConnection(t, ctrl)

	transport.EXPECT().Close().Return(nil)
	transport.EXPECT().Connected().Return(false)

	require.NoError(t, conn.Close())
	_, err := conn.OpenProps(nil, testStorageEntryID, 0).Load(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}
