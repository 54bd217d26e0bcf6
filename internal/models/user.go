package models

import (
	"fmt"
	"math/rand/v2"
	"time"

	"freeco/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"size:64;not null" json:"first_name"`
	LastName     string     `gorm:"size:64;not null" json:"last_name"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PhoneNumber  string     `gorm:"uniqueIndex;size:16;not null" json:"phone_number"`
	Role         string     `gorm:"size:20;not null;index" json:"role"` // admin | moderator | user
	Gender       string     `gorm:"size:10" json:"gender"`
	Pincode      string     `gorm:"size:6" json:"pincode"`
	State        string     `gorm:"size:64" json:"state"`
	City         string     `gorm:"size:64" json:"city"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	OTPCode      string     `gorm:"size:6" json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`
	IsApproved   bool       `gorm:"default:false" json:"is_approved"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool     { return u.Role == domain.RoleAdmin }
func (u *User) IsModerator() bool { return u.Role == domain.RoleModerator }

// GenerateOTP assigns a fresh six-digit code valid for ten minutes and
// returns it. The caller is responsible for persisting the user.
func (u *User) GenerateOTP() string {
	code := fmt.Sprintf("%06d", 100000+rand.IntN(900000))
	expires := time.Now().Add(10 * time.Minute)
	u.OTPCode = code
	u.OTPExpiresAt = &expires
	return code
}

// OTPValid reports whether code matches the stored one and has not expired.
func (u *User) OTPValid(code string, now time.Time) bool {
	if u.OTPCode == "" || u.OTPExpiresAt == nil {
		return false
	}
	if now.After(*u.OTPExpiresAt) {
		return false
	}
	return u.OTPCode == code
}

// ClearOTP removes the one-time code after successful verification.
func (u *User) ClearOTP() {
	u.OTPCode = ""
	u.OTPExpiresAt = nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
