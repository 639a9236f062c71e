package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cklob23/discipleship-journey-app/internal/models"
	"github.com/cklob23/discipleship-journey-app/internal/store"
)

// searchLimit caps directory search results.
const searchLimit = 10

// ProfileDirectory resolves identities to role-tagged profiles and finds
// potential partners by name or email.
type ProfileDirectory struct {
	profiles store.ProfileStore
}

// NewProfileDirectory creates a directory over the given store.
func NewProfileDirectory(profiles store.ProfileStore) *ProfileDirectory {
	return &ProfileDirectory{profiles: profiles}
}

// Onboard creates the profile for an authenticated user. Each user gets
// exactly one profile and the role is fixed from here on.
func (d *ProfileDirectory) Onboard(ctx context.Context, userID uint, displayName string, role models.Role, avatarURL, email string) (*models.Profile, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	displayName = strings.TrimSpace(displayName)

	if _, err := d.profiles.GetByUserID(ctx, userID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check existing profile: %w", err)
	}

	p := &models.Profile{
		UserID:      userID,
		DisplayName: displayName,
		Role:        role,
		AvatarURL:   avatarURL,
		Email:       email,
	}
	if err := d.profiles.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// Get returns a profile by ID.
func (d *ProfileDirectory) Get(ctx context.Context, profileID uint) (*models.Profile, error) {
	p, err := d.profiles.GetByID(ctx, profileID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// GetByUser resolves the authenticated user's own profile.
func (d *ProfileDirectory) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	p, err := d.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// Search returns profiles matching the query by display name or email,
// restricted to the role complementary to the requester's and never
// including the requester. An empty result is not an error.
func (d *ProfileDirectory) Search(ctx context.Context, query string, requester *models.Profile) ([]models.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Profile{}, nil
	}

	results, err := d.profiles.Search(ctx, query, requester.Role.Counterpart(), requester.ID, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search profiles: %w", err)
	}
	if results == nil {
		results = []models.Profile{}
	}
	return results, nil
}
