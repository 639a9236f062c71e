package service

import (
	"context"
	"strings"
	"sync"

	"github.com/cklob23/discipleship-journey-app/internal/models"
	"github.com/cklob23/discipleship-journey-app/internal/store"
)

// memProfileStore is an in-memory ProfileStore for tests.
type memProfileStore struct {
	mu       sync.Mutex
	nextID   uint
	profiles map[uint]models.Profile
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: make(map[uint]models.Profile)}
}

func (s *memProfileStore) Create(_ context.Context, p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	s.profiles[p.ID] = *p
	return nil
}

func (s *memProfileStore) GetByID(_ context.Context, id uint) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *memProfileStore) GetByUserID(_ context.Context, userID uint) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.UserID == userID {
			p := p
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memProfileStore) Search(_ context.Context, query string, role models.Role, excludeID uint, limit int) ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	var out []models.Profile
	for id := uint(1); id <= s.nextID; id++ {
		p, ok := s.profiles[id]
		if !ok || p.ID == excludeID || p.Role != role {
			continue
		}
		if !strings.Contains(strings.ToLower(p.DisplayName), q) && !strings.Contains(strings.ToLower(p.Email), q) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// memConnectionStore is an in-memory ConnectionStore for tests.
type memConnectionStore struct {
	mu          sync.Mutex
	nextID      uint
	connections map[uint]models.Connection
}

func newMemConnectionStore() *memConnectionStore {
	return &memConnectionStore{connections: make(map[uint]models.Connection)}
}

func (s *memConnectionStore) Create(_ context.Context, c *models.Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	s.connections[c.ID] = *c
	return nil
}

func (s *memConnectionStore) GetByID(_ context.Context, id uint) (*models.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.connections[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (s *memConnectionStore) FindPair(_ context.Context, leaderID, learnerID uint, statuses []models.ConnectionStatus) (*models.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := uint(1); id <= s.nextID; id++ {
		c, ok := s.connections[id]
		if !ok || c.LeaderID != leaderID || c.LearnerID != learnerID {
			continue
		}
		for _, st := range statuses {
			if c.Status == st {
				return &c, nil
			}
		}
	}
	return nil, store.ErrNotFound
}

func (s *memConnectionStore) TransitionStatus(_ context.Context, id uint, from, to models.ConnectionStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.connections[id]
	if !ok || c.Status != from {
		return false, nil
	}
	c.Status = to
	s.connections[id] = c
	return true, nil
}

func (s *memConnectionStore) ListForProfile(_ context.Context, profileID uint, status models.ConnectionStatus) ([]models.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Connection
	for id := uint(1); id <= s.nextID; id++ {
		c, ok := s.connections[id]
		if !ok || !c.HasParticipant(profileID) {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// memCovenantStore is an in-memory CovenantStore for tests.
type memCovenantStore struct {
	mu        sync.Mutex
	nextID    uint
	covenants map[uint]models.Covenant
}

func newMemCovenantStore() *memCovenantStore {
	return &memCovenantStore{covenants: make(map[uint]models.Covenant)}
}

func (s *memCovenantStore) Create(_ context.Context, c *models.Covenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	s.covenants[c.ID] = *c
	return nil
}

func (s *memCovenantStore) GetByConnectionID(_ context.Context, connectionID uint) (*models.Covenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.covenants {
		if c.ConnectionID == connectionID {
			c := c
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memCovenantStore) UpdateVersioned(_ context.Context, id uint, version int, fields map[string]interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.covenants[id]
	if !ok || c.Version != version {
		return false, nil
	}
	for k, v := range fields {
		switch k {
		case "content":
			c.Content = v.(string)
		case "leader_signed":
			c.LeaderSigned = v.(bool)
		case "learner_signed":
			c.LearnerSigned = v.(bool)
		}
	}
	c.Version++
	s.covenants[id] = c
	return true, nil
}

// memMessageStore is an in-memory MessageStore for tests.
type memMessageStore struct {
	mu       sync.Mutex
	nextID   uint
	messages []models.Message
}

func newMemMessageStore() *memMessageStore {
	return &memMessageStore{}
}

func (s *memMessageStore) Create(_ context.Context, m *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	m.ID = s.nextID
	s.messages = append(s.messages, *m)
	return nil
}

func (s *memMessageStore) ListByConnection(_ context.Context, connectionID uint) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Message
	for _, m := range s.messages {
		if m.ConnectionID == connectionID {
			out = append(out, m)
		}
	}
	return out, nil
}

// recordingMailer captures outgoing mail for assertions.
type recordingMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

func (m *recordingMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func profileFixture(t interface{ Fatalf(string, ...interface{}) }, s *memProfileStore, userID uint, name string, role models.Role) *models.Profile {
	p := &models.Profile{
		UserID:      userID,
		DisplayName: name,
		Role:        role,
		Email:       strings.ToLower(name) + "@example.com",
	}
	if err := s.Create(context.Background(), p); err != nil {
		t.Fatalf("create profile fixture: %v", err)
	}
	return p
}
