package models

import (
	"time"

	"freeco/internal/domain"

	"gorm.io/gorm"
)

// Interest is a directed expression of intent from sender to the owner of
// one listing. The listing reference is weak (id + type tag), matching the
// polymorphic reference in the listings table.
type Interest struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SenderID    uint   `gorm:"not null;index" json:"sender_id"`
	ReceiverID  uint   `gorm:"not null;index" json:"receiver_id"`
	ListingID   uint   `gorm:"not null;index" json:"listing_id"`
	ListingType string `gorm:"size:20;not null" json:"listing_type"`

	Status          string `gorm:"size:20;not null;index" json:"status"` // pending | accepted | rejected
	Message         string `gorm:"size:500" json:"message"`
	ResponseMessage string `gorm:"size:500" json:"response_message"`

	// IsApproved is the moderation flag, orthogonal to Status.
	IsApproved bool `gorm:"default:false" json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (Interest) TableName() string {
	return "interests"
}

func (i *Interest) IsPending() bool { return i.Status == domain.InterestStatusPending }
