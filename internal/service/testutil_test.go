package service

import (
	"fmt"
	"testing"

	"freeco/config"
	"freeco/internal/database"
	"freeco/internal/domain"
	"freeco/internal/models"
	"freeco/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret: "test-secret",
			Expiry: 3600000000000,
			Issuer: "freeco-test",
		},
	}
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	userSeq++
	u := &models.User{
		FirstName:   "Test",
		LastName:    fmt.Sprintf("User%d", userSeq),
		Email:       fmt.Sprintf("user%d@example.com", userSeq),
		PhoneNumber: fmt.Sprintf("98765%05d", userSeq),
		Role:        role,
		Gender:      domain.GenderMale,
		Pincode:     "110001",
		State:       "Delhi",
		City:        "New Delhi",
		IsVerified:  true,
		IsActive:    true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func productInput() ListingInput {
	return ListingInput{
		Title:         "Wooden Study Table",
		Description:   "Solid teak, lightly used",
		City:          "New Delhi",
		State:         "Delhi",
		Pincode:       "110001",
		SubCategory:   "furniture",
		Quantity:      1,
		TermsAccepted: true,
	}
}

func matrimonyInput() ListingInput {
	return ListingInput{
		City:          "Mumbai",
		State:         "Maharashtra",
		Pincode:       "400001",
		FirstName:     "Asha",
		LastName:      "Verma",
		Gender:        domain.GenderFemale,
		Age:           28,
		HeightCm:      160,
		WeightKg:      55,
		MaritalStatus: domain.MaritalSingle,
		Religion:      "Hindu",
		Occupation:    domain.OccupationEmployed,
		TermsAccepted: true,
	}
}

func newNotifSvc(db *gorm.DB) *NotificationService {
	return NewNotificationService(
		repository.NewNotificationRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
}

func seedListing(t *testing.T, db *gorm.DB, ownerID uint, tag, status string) *models.Listing {
	t.Helper()
	l := &models.Listing{
		ListingType:   tag,
		UserID:        ownerID,
		Title:         "Seed Listing",
		Status:        status,
		City:          "New Delhi",
		State:         "Delhi",
		Pincode:       "110001",
		SubCategory:   "general",
		Quantity:      1,
		TermsAccepted: true,
	}
	require.NoError(t, db.Create(l).Error)
	return l
}
