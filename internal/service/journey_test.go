package service

import (
	"context"
	"testing"

	"github.com/cklob23/discipleship-journey-app/internal/hub"
	"github.com/cklob23/discipleship-journey-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullJourney walks one pairing end to end: invite, accept, covenant
// creation, both signatures, then an edit that demands re-consent.
func TestFullJourney(t *testing.T) {
	profiles := newMemProfileStore()
	connections := newMemConnectionStore()
	covenants := newMemCovenantStore()
	messages := newMemMessageStore()
	events := hub.NewHub()
	mailer := &recordingMailer{}
	ctx := context.Background()

	registry := NewConnectionRegistry(connections, profiles)
	ledger := NewCovenantLedger(covenants, registry, events)
	messageLog := NewMessageLog(messages, profiles, registry, events, mailer)

	leader := profileFixture(t, profiles, 1, "Ann", models.RoleLeader)
	learner := profileFixture(t, profiles, 2, "Ben", models.RoleLearner)

	// Leader invites, learner accepts.
	conn, err := registry.Invite(ctx, leader, learner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, conn.Status)
	assert.Equal(t, leader.ID, conn.LeaderID)
	assert.Equal(t, learner.ID, conn.LearnerID)

	conn, err = registry.Accept(ctx, conn.ID, learner)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, conn.Status)

	// Both sides now see the same active connection.
	fromLearner, err := registry.Get(ctx, conn.ID, learner)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, fromLearner.Status)

	// Leader opens the covenant, both sign.
	cov, err := ledger.GetOrCreate(ctx, conn.ID, leader)
	require.NoError(t, err)
	assert.False(t, cov.LeaderSigned)
	assert.False(t, cov.LearnerSigned)

	cov, err = ledger.Sign(ctx, conn.ID, leader)
	require.NoError(t, err)
	assert.True(t, cov.LeaderSigned)
	assert.False(t, cov.FullySigned())

	cov, err = ledger.Sign(ctx, conn.ID, learner)
	require.NoError(t, err)
	assert.True(t, cov.FullySigned())

	// An edit demands fresh consent from both.
	cov, err = ledger.UpdateContent(ctx, conn.ID, "Revised commitment.", leader)
	require.NoError(t, err)
	assert.False(t, cov.LeaderSigned)
	assert.False(t, cov.LearnerSigned)
	assert.False(t, cov.FullySigned())

	// Chat works now that the connection is active.
	msg, err := messageLog.Append(ctx, conn.ID, learner, "Hello")
	require.NoError(t, err)

	history, err := messageLog.List(ctx, conn.ID, leader)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, msg.ID, history[0].ID)
	assert.Equal(t, learner.ID, history[0].SenderID)
	assert.Equal(t, "Hello", history[0].Content)
}
