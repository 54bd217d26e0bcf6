package models

import (
	"time"

	"gorm.io/gorm"
)

// Listing is the single-table shape for all four listing categories.
// ListingType discriminates which variant a row is; variant-only columns
// are left zero for the other types. The registry in internal/listing
// enforces the per-variant required sets.
type Listing struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ListingType string `gorm:"size:20;not null;index" json:"listing_type"` // product | service | job | matrimony
	UserID      uint   `gorm:"not null;index" json:"user_id"`

	Title       string   `gorm:"size:100" json:"title"`
	Description string   `gorm:"size:1000" json:"description"`
	Status      string   `gorm:"size:20;not null;index" json:"status"` // pending | active | inactive | expired
	Views       int64    `gorm:"default:0" json:"views"`
	Tags        []string `gorm:"serializer:json" json:"tags"`
	Images      []string `gorm:"serializer:json" json:"images"`
	IsVerified  bool     `gorm:"default:false" json:"is_verified"`

	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:64;not null" json:"city"`
	State   string `gorm:"size:64;not null" json:"state"`
	Country string `gorm:"size:64" json:"country"`
	Pincode string `gorm:"size:6;not null" json:"pincode"`

	// product / service / job
	SubCategory      string `gorm:"size:64" json:"sub_category,omitempty"`
	Quantity         int    `json:"quantity,omitempty"`
	NumberOfServices int    `json:"number_of_services,omitempty"`
	JobTitle         string `gorm:"size:100" json:"job_title,omitempty"`
	JobDescription   string `gorm:"size:1000" json:"job_description,omitempty"`

	// matrimony
	FirstName     string `gorm:"size:64" json:"first_name,omitempty"`
	MiddleName    string `gorm:"size:64" json:"middle_name,omitempty"`
	LastName      string `gorm:"size:64" json:"last_name,omitempty"`
	Gender        string `gorm:"size:10" json:"gender,omitempty"`
	Age           int    `json:"age,omitempty"`
	HeightCm      int    `json:"height_cm,omitempty"`
	WeightKg      int    `json:"weight_kg,omitempty"`
	MaritalStatus string `gorm:"size:16" json:"marital_status,omitempty"`
	Religion      string `gorm:"size:64" json:"religion,omitempty"`
	Caste         string `gorm:"size:64" json:"caste,omitempty"`
	Occupation    string `gorm:"size:20" json:"occupation,omitempty"`

	TermsAccepted bool      `gorm:"default:false" json:"terms_accepted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Listing) TableName() string {
	return "listings"
}
