package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cklob23/discipleship-journey-app/internal/models"
	"github.com/cklob23/discipleship-journey-app/internal/store"

	"github.com/rs/zerolog/log"
)

// ConnectionView pairs a connection with the counterpart profile as seen
// from one participant's side.
type ConnectionView struct {
	Connection  *models.Connection
	Counterpart *models.Profile
}

// ConnectionRegistry creates and maintains leader/learner pairings.
type ConnectionRegistry struct {
	connections store.ConnectionStore
	profiles    store.ProfileStore
}

// NewConnectionRegistry creates a registry over the given stores.
func NewConnectionRegistry(connections store.ConnectionStore, profiles store.ProfileStore) *ConnectionRegistry {
	return &ConnectionRegistry{connections: connections, profiles: profiles}
}

// Invite pairs the requester with the target profile. Leader and learner
// slots are assigned from each party's existing role; inviting a profile
// holding the same role fails with ErrRoleConflict and creates nothing.
// A pending or active connection between the pair is returned as-is, so
// duplicate invites are harmless. A declined record stays behind as
// history; re-inviting creates a fresh pending connection.
func (r *ConnectionRegistry) Invite(ctx context.Context, requester *models.Profile, targetID uint) (*models.Connection, error) {
	if requester.ID == targetID {
		return nil, ErrSelfInvite
	}

	target, err := r.profiles.GetByID(ctx, targetID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load target profile: %w", err)
	}

	if target.Role == requester.Role {
		return nil, ErrRoleConflict
	}

	leaderID, learnerID := requester.ID, target.ID
	if requester.Role == models.RoleLearner {
		leaderID, learnerID = target.ID, requester.ID
	}

	live := []models.ConnectionStatus{models.StatusPending, models.StatusActive}
	existing, err := r.connections.FindPair(ctx, leaderID, learnerID, live)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check existing connection: %w", err)
	}

	conn := &models.Connection{
		LeaderID:    leaderID,
		LearnerID:   learnerID,
		InitiatorID: requester.ID,
		Status:      models.StatusPending,
	}
	if err := r.connections.Create(ctx, conn); err != nil {
		return nil, fmt.Errorf("create connection: %w", err)
	}

	log.Info().Uint("connection_id", conn.ID).Uint("leader_id", leaderID).Uint("learner_id", learnerID).Msg("connection invited")
	return conn, nil
}

// Accept transitions a pending connection to active. Only the invited
// party may accept. The transition is a guarded single-row write, so a
// connection never moves backwards and racing accepts settle on one winner;
// accepting an already active connection is a no-op success.
func (r *ConnectionRegistry) Accept(ctx context.Context, connectionID uint, accepter *models.Profile) (*models.Connection, error) {
	return r.answer(ctx, connectionID, accepter, models.StatusActive)
}

// Decline moves a pending connection to the terminal declined state. Only
// the invited party may decline.
func (r *ConnectionRegistry) Decline(ctx context.Context, connectionID uint, decliner *models.Profile) (*models.Connection, error) {
	return r.answer(ctx, connectionID, decliner, models.StatusDeclined)
}

func (r *ConnectionRegistry) answer(ctx context.Context, connectionID uint, responder *models.Profile, to models.ConnectionStatus) (*models.Connection, error) {
	conn, err := r.get(ctx, connectionID)
	if err != nil {
		return nil, err
	}

	if !conn.HasParticipant(responder.ID) || conn.InitiatorID == responder.ID {
		return nil, ErrPermissionDenied
	}

	switch conn.Status {
	case to:
		return conn, nil // answered already, idempotent
	case models.StatusPending:
	default:
		return nil, ErrNotPending
	}

	moved, err := r.connections.TransitionStatus(ctx, connectionID, models.StatusPending, to)
	if err != nil {
		return nil, fmt.Errorf("transition connection: %w", err)
	}
	if !moved {
		// Lost a race with the other answer; report the settled state.
		conn, err = r.get(ctx, connectionID)
		if err != nil {
			return nil, err
		}
		if conn.Status != to {
			return nil, ErrStaleWrite
		}
		return conn, nil
	}

	conn.Status = to
	log.Info().Uint("connection_id", connectionID).Str("status", string(to)).Msg("connection answered")
	return conn, nil
}

// Get returns a connection, restricted to its participants.
func (r *ConnectionRegistry) Get(ctx context.Context, connectionID uint, requester *models.Profile) (*models.Connection, error) {
	conn, err := r.get(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.HasParticipant(requester.ID) {
		return nil, ErrPermissionDenied
	}
	return conn, nil
}

// List returns the requester's connections, optionally filtered by status,
// each with the counterpart profile resolved.
func (r *ConnectionRegistry) List(ctx context.Context, requester *models.Profile, status models.ConnectionStatus) ([]ConnectionView, error) {
	conns, err := r.connections.ListForProfile(ctx, requester.ID, status)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	views := make([]ConnectionView, 0, len(conns))
	for i := range conns {
		conn := &conns[i]
		other, err := r.profiles.GetByID(ctx, conn.CounterpartID(requester.ID))
		if err != nil {
			log.Warn().Err(err).Uint("connection_id", conn.ID).Msg("counterpart profile missing")
			continue
		}
		views = append(views, ConnectionView{Connection: conn, Counterpart: other})
	}
	return views, nil
}

func (r *ConnectionRegistry) get(ctx context.Context, connectionID uint) (*models.Connection, error) {
	conn, err := r.connections.GetByID(ctx, connectionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load connection: %w", err)
	}
	return conn, nil
}
