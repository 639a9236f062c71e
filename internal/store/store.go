package store

import (
	"context"
	"errors"

	"github.com/cklob23/discipleship-journey-app/internal/models"
)

// ErrNotFound is returned by every store when the requested record does not
// exist. Implementations translate their driver's sentinel into this one so
// callers never see storage internals.
var ErrNotFound = errors.New("record not found")

// ProfileStore persists role-tagged profiles.
type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	// Search matches display name or email by case-insensitive substring,
	// restricted to one role, excluding one profile, capped at limit.
	Search(ctx context.Context, query string, role models.Role, excludeID uint, limit int) ([]models.Profile, error)
}

// ConnectionStore persists leader/learner pairings.
type ConnectionStore interface {
	Create(ctx context.Context, c *models.Connection) error
	GetByID(ctx context.Context, id uint) (*models.Connection, error)
	// FindPair returns the connection between the two profiles whose status
	// is one of the given set, or ErrNotFound.
	FindPair(ctx context.Context, leaderID, learnerID uint, statuses []models.ConnectionStatus) (*models.Connection, error)
	// TransitionStatus flips status from -> to in a single guarded write.
	// It reports false when no row was in the expected prior state, which is
	// how racing accepts and declines lose cleanly.
	TransitionStatus(ctx context.Context, id uint, from, to models.ConnectionStatus) (bool, error)
	// ListForProfile returns connections the profile participates in,
	// optionally filtered by status ("" means all), oldest first.
	ListForProfile(ctx context.Context, profileID uint, status models.ConnectionStatus) ([]models.Connection, error)
}

// CovenantStore persists per-connection covenants.
type CovenantStore interface {
	Create(ctx context.Context, c *models.Covenant) error
	GetByConnectionID(ctx context.Context, connectionID uint) (*models.Covenant, error)
	// UpdateVersioned applies fields to the covenant only if its stored
	// version still equals version, bumping the version in the same write.
	// It reports false on a stale version.
	UpdateVersioned(ctx context.Context, id uint, version int, fields map[string]interface{}) (bool, error)
}

// MessageStore persists the append-only chat history.
type MessageStore interface {
	Create(ctx context.Context, m *models.Message) error
	// ListByConnection returns all messages for a connection ascending by
	// creation time. Re-listing returns the same rows plus any new appends.
	ListByConnection(ctx context.Context, connectionID uint) ([]models.Message, error)
}
