package models

import "gorm.io/gorm"

// User is an authentication account. Everything discipleship-specific lives
// on the Profile created during onboarding.
type User struct {
	gorm.Model
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
}
