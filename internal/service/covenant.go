package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cklob23/discipleship-journey-app/internal/hub"
	"github.com/cklob23/discipleship-journey-app/internal/models"
	"github.com/cklob23/discipleship-journey-app/internal/store"

	"github.com/rs/zerolog/log"
)

// CovenantLedger manages the one covenant document each connection carries:
// lazy creation by the leader, content edits that reset both signatures, and
// idempotent per-role signing. Every mutation is broadcast on the
// connection's realtime channel.
type CovenantLedger struct {
	covenants store.CovenantStore
	registry  *ConnectionRegistry
	events    *hub.Hub
}

// NewCovenantLedger creates a ledger over the given collaborators.
func NewCovenantLedger(covenants store.CovenantStore, registry *ConnectionRegistry, events *hub.Hub) *CovenantLedger {
	return &CovenantLedger{covenants: covenants, registry: registry, events: events}
}

// GetOrCreate returns the covenant for a connection. On first access only
// the leader may create it, seeded with the default content and both
// signatures cleared; a learner arriving earlier gets
// ErrCovenantNotInitialized and should wait for the realtime notification.
func (l *CovenantLedger) GetOrCreate(ctx context.Context, connectionID uint, requester *models.Profile) (*models.Covenant, error) {
	conn, err := l.registry.Get(ctx, connectionID, requester)
	if err != nil {
		return nil, err
	}

	cov, err := l.covenants.GetByConnectionID(ctx, connectionID)
	if err == nil {
		return cov, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load covenant: %w", err)
	}

	if requester.Role != models.RoleLeader {
		return nil, ErrCovenantNotInitialized
	}

	cov = &models.Covenant{
		ConnectionID:  conn.ID,
		Content:       models.DefaultCovenantContent,
		LeaderSigned:  false,
		LearnerSigned: false,
		Version:       1,
	}
	if err := l.covenants.Create(ctx, cov); err != nil {
		return nil, fmt.Errorf("create covenant: %w", err)
	}

	log.Info().Uint("connection_id", conn.ID).Uint("covenant_id", cov.ID).Msg("covenant created")
	l.publish(conn.ID, requester.ID, cov)
	return cov, nil
}

// UpdateContent replaces the covenant text. Leader only. Any edit clears
// both signatures so both parties re-consent to the new terms.
func (l *CovenantLedger) UpdateContent(ctx context.Context, connectionID uint, newContent string, requester *models.Profile) (*models.Covenant, error) {
	cov, err := l.loadFor(ctx, connectionID, requester)
	if err != nil {
		return nil, err
	}

	if requester.Role != models.RoleLeader {
		return nil, ErrPermissionDenied
	}

	ok, err := l.covenants.UpdateVersioned(ctx, cov.ID, cov.Version, map[string]interface{}{
		"content":        newContent,
		"leader_signed":  false,
		"learner_signed": false,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStaleWrite
	}

	cov.Content = newContent
	cov.LeaderSigned = false
	cov.LearnerSigned = false
	cov.Version++

	l.publish(connectionID, requester.ID, cov)
	return cov, nil
}

// Sign sets the signature flag matching the requester's role. Signing twice
// is a no-op.
func (l *CovenantLedger) Sign(ctx context.Context, connectionID uint, requester *models.Profile) (*models.Covenant, error) {
	cov, err := l.loadFor(ctx, connectionID, requester)
	if err != nil {
		return nil, err
	}

	if cov.SignedBy(requester.Role) {
		return cov, nil
	}

	field := "learner_signed"
	if requester.Role == models.RoleLeader {
		field = "leader_signed"
	}

	ok, err := l.covenants.UpdateVersioned(ctx, cov.ID, cov.Version, map[string]interface{}{
		field: true,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStaleWrite
	}

	if requester.Role == models.RoleLeader {
		cov.LeaderSigned = true
	} else {
		cov.LearnerSigned = true
	}
	cov.Version++

	log.Info().Uint("covenant_id", cov.ID).Str("role", string(requester.Role)).Bool("fully_signed", cov.FullySigned()).Msg("covenant signed")
	l.publish(connectionID, requester.ID, cov)
	return cov, nil
}

func (l *CovenantLedger) loadFor(ctx context.Context, connectionID uint, requester *models.Profile) (*models.Covenant, error) {
	if _, err := l.registry.Get(ctx, connectionID, requester); err != nil {
		return nil, err
	}

	cov, err := l.covenants.GetByConnectionID(ctx, connectionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCovenantNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("load covenant: %w", err)
	}
	return cov, nil
}

func (l *CovenantLedger) publish(connectionID, originProfileID uint, cov *models.Covenant) {
	l.events.Publish(connectionID, hub.Event{
		Type: hub.EventCovenantUpdate,
		Payload: map[string]interface{}{
			"covenant": CovenantState(cov),
		},
		OriginProfileID: originProfileID,
		Timestamp:       time.Now().UTC(),
	})
}

// CovenantState is the wire shape of a covenant inside realtime payloads
// and API responses.
func CovenantState(c *models.Covenant) map[string]interface{} {
	return map[string]interface{}{
		"id":             c.ID,
		"connection_id":  c.ConnectionID,
		"content":        c.Content,
		"leader_signed":  c.LeaderSigned,
		"learner_signed": c.LearnerSigned,
		"fully_signed":   c.FullySigned(),
		"version":        c.Version,
	}
}
