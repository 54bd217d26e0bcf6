package models

import "time"

// DashboardSnapshot is the singleton aggregate row behind the admin
// dashboard. It is derived state, fully recomputed on read, never a
// source of truth.
type DashboardSnapshot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TotalUsers  int64 `json:"total_users"`
	ActiveUsers int64 `json:"active_users"`

	ProductListings   int64 `json:"product_listings"`
	ServiceListings   int64 `json:"service_listings"`
	JobListings       int64 `json:"job_listings"`
	MatrimonyListings int64 `json:"matrimony_listings"`

	ActiveListings   int64 `json:"active_listings"`
	InactiveListings int64 `json:"inactive_listings"`
	PendingListings  int64 `json:"pending_listings"`

	// Rolling 30-day activity.
	NewUsers30d     int64 `json:"new_users_30d"`
	NewInterests30d int64 `json:"new_interests_30d"`

	// System configuration, persisted alongside the stats.
	MaintenanceMode bool   `gorm:"default:false" json:"maintenance_mode"`
	DisclaimerText  string `gorm:"size:2000" json:"disclaimer_text"`
	TermsOfService  string `gorm:"type:text" json:"terms_of_service"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (DashboardSnapshot) TableName() string {
	return "dashboard_snapshots"
}
