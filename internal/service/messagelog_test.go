package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cklob23/discipleship-journey-app/internal/hub"
	"github.com/cklob23/discipleship-journey-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageFixture struct {
	*registryFixture
	log    *MessageLog
	events *hub.Hub
	mailer *recordingMailer
	conn   *models.Connection
}

func newMessageFixture(t *testing.T) *messageFixture {
	base := newRegistryFixture(t)
	ctx := context.Background()

	conn, err := base.registry.Invite(ctx, base.leader, base.learner.ID)
	require.NoError(t, err)
	_, err = base.registry.Accept(ctx, conn.ID, base.learner)
	require.NoError(t, err)

	events := hub.NewHub()
	mailer := &recordingMailer{}
	return &messageFixture{
		registryFixture: base,
		log:             NewMessageLog(newMemMessageStore(), base.profiles, base.registry, events, mailer),
		events:          events,
		mailer:          mailer,
		conn:            conn,
	}
}

func TestAppendPersistsAndOrdersHistory(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	first, err := f.log.Append(ctx, f.conn.ID, f.leader, "hello")
	require.NoError(t, err)
	second, err := f.log.Append(ctx, f.conn.ID, f.learner, "hi back")
	require.NoError(t, err)

	// Both participants read the same single history.
	for _, reader := range []*models.Profile{f.leader, f.learner} {
		msgs, err := f.log.List(ctx, f.conn.ID, reader)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, first.ID, msgs[0].ID)
		assert.Equal(t, second.ID, msgs[1].ID)
		assert.Equal(t, f.leader.ID, msgs[0].SenderID)
		assert.Equal(t, f.learner.ID, msgs[1].SenderID)
	}
}

func TestAppendRejectsEmptyContent(t *testing.T) {
	f := newMessageFixture(t)

	_, err := f.log.Append(context.Background(), f.conn.ID, f.leader, "   \n ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestAppendRequiresActiveConnection(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	pending, err := f.registry.Invite(ctx, f.leader, profileFixture(t, f.profiles, 3, "New", models.RoleLearner).ID)
	require.NoError(t, err)

	_, err = f.log.Append(ctx, pending.ID, f.leader, "too early")
	assert.ErrorIs(t, err, ErrConnectionNotActive)
}

func TestAppendRejectsOutsiders(t *testing.T) {
	f := newMessageFixture(t)
	outsider := profileFixture(t, f.profiles, 3, "Out", models.RoleLearner)

	_, err := f.log.Append(context.Background(), f.conn.ID, outsider, "let me in")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.log.List(context.Background(), f.conn.ID, outsider)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestAppendBroadcastsChatEvent(t *testing.T) {
	f := newMessageFixture(t)

	sub := f.events.Subscribe(f.conn.ID)
	defer f.events.Unsubscribe(sub)

	msg, err := f.log.Append(context.Background(), f.conn.ID, f.leader, "hello")
	require.NoError(t, err)

	var ev hub.Event
	require.NoError(t, json.Unmarshal(<-sub.C, &ev))
	assert.Equal(t, hub.EventChat, ev.Type)
	assert.Equal(t, f.leader.ID, ev.OriginProfileID)

	payload := ev.Payload.(map[string]interface{})
	wire := payload["message"].(map[string]interface{})
	assert.Equal(t, float64(msg.ID), wire["id"])
	assert.Equal(t, "hello", wire["content"])
}

func TestAppendEmailsCounterpart(t *testing.T) {
	f := newMessageFixture(t)

	_, err := f.log.Append(context.Background(), f.conn.ID, f.leader, "ping")
	require.NoError(t, err)

	// The notification runs in the background.
	require.Eventually(t, func() bool {
		return len(f.mailer.recipients()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, f.learner.Email, f.mailer.recipients()[0])
}

func TestListEmptyHistoryIsEmptySlice(t *testing.T) {
	f := newMessageFixture(t)

	msgs, err := f.log.List(context.Background(), f.conn.ID, f.learner)
	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}
