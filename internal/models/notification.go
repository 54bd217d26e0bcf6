package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is a fire-and-forget record attached to one user, created
// only as a side effect of another mutation. Rows older than 30 days are
// eligible for cleanup.
type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index:idx_notifications_user_read" json:"user_id"`
	Type    string `gorm:"size:50;not null" json:"type"`
	Content string `gorm:"size:500;not null" json:"content"`

	// Optional polymorphic reference to the entity that caused it.
	RelatedType string `gorm:"size:20" json:"related_type,omitempty"` // Interest | Listing | Message
	RelatedID   uint   `json:"related_id,omitempty"`

	IsRead    bool      `gorm:"default:false;index:idx_notifications_user_read" json:"is_read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

const (
	RelatedInterest = "Interest"
	RelatedListing  = "Listing"
	RelatedMessage  = "Message"
)
