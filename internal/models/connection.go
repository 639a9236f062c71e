package models

import "gorm.io/gorm"

// ConnectionStatus defines the lifecycle of a leader/learner pairing.
type ConnectionStatus string

const (
	// StatusPending means an invite has been sent but not yet answered.
	StatusPending ConnectionStatus = "pending"

	// StatusActive means the invited party accepted; the journey is underway.
	StatusActive ConnectionStatus = "active"

	// StatusDeclined is terminal. A declined pairing can only be restarted
	// by sending a fresh invite, which creates a new record.
	StatusDeclined ConnectionStatus = "declined"
)

// Connection pairs exactly one leader profile with one learner profile.
// A single shared row is visible to both parties; counterpart display data
// is joined from profiles at read time rather than denormalized.
type Connection struct {
	gorm.Model
	LeaderID    uint             `gorm:"not null;index:idx_connection_pair"`
	LearnerID   uint             `gorm:"not null;index:idx_connection_pair"`
	InitiatorID uint             `gorm:"not null"`
	Status      ConnectionStatus `gorm:"type:varchar(20);not null;index"`

	Leader  Profile `gorm:"foreignKey:LeaderID"`
	Learner Profile `gorm:"foreignKey:LearnerID"`
}

// ParticipantIDs returns the two profile IDs bound by the connection.
func (c *Connection) ParticipantIDs() (uint, uint) {
	return c.LeaderID, c.LearnerID
}

// HasParticipant reports whether the given profile is a party to c.
func (c *Connection) HasParticipant(profileID uint) bool {
	return c.LeaderID == profileID || c.LearnerID == profileID
}

// CounterpartID returns the other participant's profile ID.
func (c *Connection) CounterpartID(profileID uint) uint {
	if c.LeaderID == profileID {
		return c.LearnerID
	}
	return c.LeaderID
}
