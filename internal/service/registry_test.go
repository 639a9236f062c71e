package service

import (
	"context"
	"testing"

	"github.com/cklob23/discipleship-journey-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registryFixture struct {
	registry    *ConnectionRegistry
	profiles    *memProfileStore
	connections *memConnectionStore
	leader      *models.Profile
	learner     *models.Profile
}

func newRegistryFixture(t *testing.T) *registryFixture {
	profiles := newMemProfileStore()
	connections := newMemConnectionStore()
	f := &registryFixture{
		registry:    NewConnectionRegistry(connections, profiles),
		profiles:    profiles,
		connections: connections,
	}
	f.leader = profileFixture(t, profiles, 1, "Lee", models.RoleLeader)
	f.learner = profileFixture(t, profiles, 2, "Lou", models.RoleLearner)
	return f
}

func TestInviteCreatesPendingConnection(t *testing.T) {
	f := newRegistryFixture(t)

	conn, err := f.registry.Invite(context.Background(), f.leader, f.learner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, conn.Status)
	assert.Equal(t, f.leader.ID, conn.LeaderID)
	assert.Equal(t, f.learner.ID, conn.LearnerID)
	assert.Equal(t, f.leader.ID, conn.InitiatorID)
}

func TestInviteAssignsSlotsFromRoles(t *testing.T) {
	f := newRegistryFixture(t)

	// Invitation from the learner side still lands the leader in the
	// leader slot.
	conn, err := f.registry.Invite(context.Background(), f.learner, f.leader.ID)
	require.NoError(t, err)
	assert.Equal(t, f.leader.ID, conn.LeaderID)
	assert.Equal(t, f.learner.ID, conn.LearnerID)
	assert.Equal(t, f.learner.ID, conn.InitiatorID)
}

func TestInviteSelfFails(t *testing.T) {
	f := newRegistryFixture(t)

	_, err := f.registry.Invite(context.Background(), f.leader, f.leader.ID)
	assert.ErrorIs(t, err, ErrSelfInvite)
}

func TestInviteSameRoleFailsAndCreatesNothing(t *testing.T) {
	f := newRegistryFixture(t)
	other := profileFixture(t, f.profiles, 3, "Len", models.RoleLeader)

	_, err := f.registry.Invite(context.Background(), f.leader, other.ID)
	assert.ErrorIs(t, err, ErrRoleConflict)

	views, err := f.registry.List(context.Background(), f.leader, "")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestInviteUnknownTargetFails(t *testing.T) {
	f := newRegistryFixture(t)

	_, err := f.registry.Invite(context.Background(), f.leader, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateInviteReturnsExistingConnection(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()

	first, err := f.registry.Invite(ctx, f.leader, f.learner.ID)
	require.NoError(t, err)

	again, err := f.registry.Invite(ctx, f.leader, f.learner.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	// An invite from the other side of the same pair also reuses it.
	crossed, err := f.registry.Invite(ctx, f.learner, f.leader.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, crossed.ID)
}

func TestAcceptActivatesPendingConnection(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()

	conn, err := f.registry.Invite(ctx, f.leader, f.learner.ID)
	require.NoError(t, err)

	accepted, err := f.registry.Accept(ctx, conn.ID, f.learner)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, accepted.Status)

	// Accepting twice is a no-op success.
	again, err := f.registry.Accept(ctx, conn.ID, f.learner)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, again.Status)
}

func TestInitiatorCannotAnswerOwnInvite(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()

	conn, err := f.registry.Invite(ctx, f.leader, f.learner.ID)
	require.NoError(t, err)

	_, err = f.registry.Accept(ctx, conn.ID, f.leader)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.registry.Decline(ctx, conn.ID, f.leader)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestOutsiderCannotAnswerOrRead(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()
	outsider := profileFixture(t, f.profiles, 3, "Out", models.RoleLearner)

	conn, err := f.registry.Invite(ctx, f.leader, f.learner.ID)
	require.NoError(t, err)

	_, err = f.registry.Accept(ctx, conn.ID, outsider)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.registry.Get(ctx, conn.ID, outsider)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestDeclineIsTerminal(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()

	conn, err := f.registry.Invite(ctx, f.leader, f.learner.ID)
	require.NoError(t, err)

	declined, err := f.registry.Decline(ctx, conn.ID, f.learner)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, declined.Status)

	// A declined connection cannot be accepted afterwards.
	_, err = f.registry.Accept(ctx, conn.ID, f.learner)
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestReinviteAfterDeclineCreatesFreshConnection(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()

	first, err := f.registry.Invite(ctx, f.leader, f.learner.ID)
	require.NoError(t, err)
	_, err = f.registry.Decline(ctx, first.ID, f.learner)
	require.NoError(t, err)

	second, err := f.registry.Invite(ctx, f.leader, f.learner.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, models.StatusPending, second.Status)

	// The declined record stays behind as history.
	views, err := f.registry.List(ctx, f.leader, models.StatusDeclined)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, first.ID, views[0].Connection.ID)
}

func TestRacingAnswerSettlesOnFirstWriter(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()

	conn, err := f.registry.Invite(ctx, f.leader, f.learner.ID)
	require.NoError(t, err)

	_, err = f.registry.Accept(ctx, conn.ID, f.learner)
	require.NoError(t, err)

	// A decline that raced the accept loses without moving the row back.
	_, err = f.registry.Decline(ctx, conn.ID, f.learner)
	assert.ErrorIs(t, err, ErrNotPending)

	got, err := f.registry.Get(ctx, conn.ID, f.leader)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
}

func TestListFiltersByStatusAndResolvesCounterpart(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()
	second := profileFixture(t, f.profiles, 3, "Lex", models.RoleLearner)

	pending, err := f.registry.Invite(ctx, f.leader, f.learner.ID)
	require.NoError(t, err)
	active, err := f.registry.Invite(ctx, f.leader, second.ID)
	require.NoError(t, err)
	_, err = f.registry.Accept(ctx, active.ID, second)
	require.NoError(t, err)

	all, err := f.registry.List(ctx, f.leader, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pendingOnly, err := f.registry.List(ctx, f.leader, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pendingOnly, 1)
	assert.Equal(t, pending.ID, pendingOnly[0].Connection.ID)
	assert.Equal(t, f.learner.ID, pendingOnly[0].Counterpart.ID)
}
