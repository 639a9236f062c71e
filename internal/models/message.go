package models

import "gorm.io/gorm"

// Message is one chat entry in a connection's history. Messages are
// append-only: a single shared row per logical message, queried by
// connection, readable by both participants.
type Message struct {
	gorm.Model
	ConnectionID uint   `gorm:"not null;index"`
	SenderID     uint   `gorm:"not null"`
	Content      string `gorm:"type:text;not null"`

	Sender Profile `gorm:"foreignKey:SenderID"`
}
