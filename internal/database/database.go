package database

import (
	"errors"

	"freeco/config"
	"freeco/internal/domain"
	"freeco/internal/logger"
	"freeco/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Interest{},
		&models.Notification{},
		&models.DashboardSnapshot{},
	)
}

// SeedAccounts creates the first-boot admin and moderator accounts,
// pre-verified so they can log in without the OTP round trip. Existing
// accounts are left untouched.
func SeedAccounts(db *gorm.DB) {
	seed := []struct {
		email, phone, first, last, role string
	}{
		{"admin@freeco.local", "9000000001", "Site", "Admin", domain.RoleAdmin},
		{"moderator@freeco.local", "9000000002", "Site", "Moderator", domain.RoleModerator},
	}
	for _, s := range seed {
		var existing models.User
		err := db.Where("email = ?", s.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.L().Error("seed lookup failed", zap.String("email", s.email), zap.Error(err))
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte("change-me"), bcrypt.DefaultCost)
		if err != nil {
			logger.L().Error("seed hash failed", zap.Error(err))
			continue
		}
		u := models.User{
			FirstName:    s.first,
			LastName:     s.last,
			Email:        s.email,
			PhoneNumber:  s.phone,
			Role:         s.role,
			PasswordHash: string(hash),
			IsVerified:   true,
			IsApproved:   true,
			IsActive:     true,
		}
		if err := db.Create(&u).Error; err != nil {
			logger.L().Error("seed create failed", zap.String("email", s.email), zap.Error(err))
			continue
		}
		logger.L().Info("seeded account", zap.String("email", s.email), zap.String("role", s.role))
	}
}
