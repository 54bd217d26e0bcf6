package repository

import (
	"errors"

	"freeco/internal/models"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Get returns the singleton snapshot row, creating an empty one on first use.
func (r *DashboardRepository) Get() (*models.DashboardSnapshot, error) {
	var s models.DashboardSnapshot
	err := r.db.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = models.DashboardSnapshot{}
		if err := r.db.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DashboardRepository) Save(s *models.DashboardSnapshot) error {
	return r.db.Save(s).Error
}
