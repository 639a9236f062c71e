package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/cklob23/discipleship-journey-app/internal/models"

	"gorm.io/gorm"
)

// GormStores bundles the gorm-backed implementation of every store over one
// shared *gorm.DB.
type GormStores struct {
	Profiles    *GormProfileStore
	Connections *GormConnectionStore
	Covenants   *GormCovenantStore
	Messages    *GormMessageStore
}

// NewGormStores wires all stores to db.
func NewGormStores(db *gorm.DB) *GormStores {
	return &GormStores{
		Profiles:    &GormProfileStore{db: db},
		Connections: &GormConnectionStore{db: db},
		Covenants:   &GormCovenantStore{db: db},
		Messages:    &GormMessageStore{db: db},
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// GormProfileStore implements ProfileStore on postgres.
type GormProfileStore struct {
	db *gorm.DB
}

func (s *GormProfileStore) Create(ctx context.Context, p *models.Profile) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *GormProfileStore) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var p models.Profile
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *GormProfileStore) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var p models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *GormProfileStore) Search(ctx context.Context, query string, role models.Role, excludeID uint, limit int) ([]models.Profile, error) {
	pattern := "%" + query + "%"
	var profiles []models.Profile
	err := s.db.WithContext(ctx).
		Where("role = ? AND id <> ?", role, excludeID).
		Where("display_name ILIKE ? OR email ILIKE ?", pattern, pattern).
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// GormConnectionStore implements ConnectionStore on postgres.
type GormConnectionStore struct {
	db *gorm.DB
}

func (s *GormConnectionStore) Create(ctx context.Context, c *models.Connection) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *GormConnectionStore) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	var c models.Connection
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *GormConnectionStore) FindPair(ctx context.Context, leaderID, learnerID uint, statuses []models.ConnectionStatus) (*models.Connection, error) {
	var c models.Connection
	err := s.db.WithContext(ctx).
		Where("leader_id = ? AND learner_id = ? AND status IN ?", leaderID, learnerID, statuses).
		First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *GormConnectionStore) TransitionStatus(ctx context.Context, id uint, from, to models.ConnectionStatus) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormConnectionStore) ListForProfile(ctx context.Context, profileID uint, status models.ConnectionStatus) ([]models.Connection, error) {
	q := s.db.WithContext(ctx).Where("leader_id = ? OR learner_id = ?", profileID, profileID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var conns []models.Connection
	if err := q.Order("created_at asc").Find(&conns).Error; err != nil {
		return nil, err
	}
	return conns, nil
}

// GormCovenantStore implements CovenantStore on postgres.
type GormCovenantStore struct {
	db *gorm.DB
}

func (s *GormCovenantStore) Create(ctx context.Context, c *models.Covenant) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *GormCovenantStore) GetByConnectionID(ctx context.Context, connectionID uint) (*models.Covenant, error) {
	var c models.Covenant
	if err := s.db.WithContext(ctx).Where("connection_id = ?", connectionID).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *GormCovenantStore) UpdateVersioned(ctx context.Context, id uint, version int, fields map[string]interface{}) (bool, error) {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["version"] = version + 1

	res := s.db.WithContext(ctx).
		Model(&models.Covenant{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if res.Error != nil {
		return false, fmt.Errorf("update covenant: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GormMessageStore implements MessageStore on postgres.
type GormMessageStore struct {
	db *gorm.DB
}

func (s *GormMessageStore) Create(ctx context.Context, m *models.Message) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *GormMessageStore) ListByConnection(ctx context.Context, connectionID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Where("connection_id = ?", connectionID).
		Order("created_at asc, id asc").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
