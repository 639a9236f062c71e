package models

import "gorm.io/gorm"

// DefaultCovenantContent seeds a covenant the first time the leader opens it.
const DefaultCovenantContent = "This covenant outlines our commitment to regular meetings, prayer, and shared learning..."

// Covenant is the signed agreement gating full collaboration on a
// connection. Editing the content always clears both signatures; Version
// guards every write against concurrent sign/edit races.
type Covenant struct {
	gorm.Model
	ConnectionID  uint   `gorm:"uniqueIndex;not null"`
	Content       string `gorm:"type:text;not null"`
	LeaderSigned  bool   `gorm:"not null;default:false"`
	LearnerSigned bool   `gorm:"not null;default:false"`
	Version       int    `gorm:"not null;default:1"`

	Connection Connection `gorm:"foreignKey:ConnectionID"`
}

// FullySigned reports whether both parties have signed since the last edit.
func (c *Covenant) FullySigned() bool {
	return c.LeaderSigned && c.LearnerSigned
}

// SignedBy reports whether the given role has signed.
func (c *Covenant) SignedBy(role Role) bool {
	if role == RoleLeader {
		return c.LeaderSigned
	}
	return c.LearnerSigned
}
