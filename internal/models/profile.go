package models

import "gorm.io/gorm"

// Role is the part a profile plays in a discipleship pairing. It is chosen
// once at onboarding and never changes.
type Role string

const (
	RoleLeader  Role = "leader"
	RoleLearner Role = "learner"
)

// Counterpart returns the complementary role.
func (r Role) Counterpart() Role {
	if r == RoleLeader {
		return RoleLearner
	}
	return RoleLeader
}

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleLeader || r == RoleLearner
}

// Profile is the public, role-tagged identity of a user.
type Profile struct {
	gorm.Model
	UserID      uint   `gorm:"uniqueIndex;not null"`
	DisplayName string `gorm:"size:255;not null"`
	Role        Role   `gorm:"type:varchar(20);not null;index"`
	AvatarURL   string `gorm:"size:512"`
	Email       string `gorm:"size:255"`

	User User `gorm:"foreignKey:UserID"`
}
