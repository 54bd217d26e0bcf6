package repository

import (
	"time"

	"freeco/internal/domain"
	"freeco/internal/models"

	"gorm.io/gorm"
)

type InterestRepository struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) *InterestRepository {
	return &InterestRepository{db: db}
}

func (r *InterestRepository) Create(i *models.Interest) error {
	return r.db.Create(i).Error
}

func (r *InterestRepository) GetByID(id uint) (*models.Interest, error) {
	var i models.Interest
	if err := r.db.First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InterestRepository) Update(i *models.Interest) error {
	return r.db.Save(i).Error
}

// GetPending returns the pending interest for the exact
// (sender, receiver, listing) triple, if one exists.
func (r *InterestRepository) GetPending(senderID, receiverID, listingID uint) (*models.Interest, error) {
	var i models.Interest
	err := r.db.Where("sender_id = ? AND receiver_id = ? AND listing_id = ? AND status = ?",
		senderID, receiverID, listingID, domain.InterestStatusPending).First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// GetPendingForReceiver returns the pending interest only if receiverID is
// its receiver; used by respond so a sender can never resolve their own.
func (r *InterestRepository) GetPendingForReceiver(id, receiverID uint) (*models.Interest, error) {
	var i models.Interest
	err := r.db.Where("id = ? AND receiver_id = ? AND status = ?",
		id, receiverID, domain.InterestStatusPending).First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Exists reports whether the user has ever sent an interest for the listing,
// regardless of status.
func (r *InterestRepository) Exists(listingID, senderID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Interest{}).
		Where("listing_id = ? AND sender_id = ?", listingID, senderID).
		Limit(1).Count(&c).Error
	return c > 0, err
}

// ListBySender returns a page of interests sent by the user, newest first,
// with the receiver preloaded for display.
func (r *InterestRepository) ListBySender(senderID uint, status string, page, limit int) ([]models.Interest, int64, error) {
	q := r.db.Model(&models.Interest{}).Where("sender_id = ?", senderID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Interest
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).
		Preload("Receiver").Find(&items).Error
	return items, total, err
}

// ListByReceiver returns a page of interests received by the user, newest
// first, with the sender preloaded for display.
func (r *InterestRepository) ListByReceiver(receiverID uint, status string, page, limit int) ([]models.Interest, int64, error) {
	q := r.db.Model(&models.Interest{}).Where("receiver_id = ?", receiverID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Interest
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).
		Preload("Sender").Find(&items).Error
	return items, total, err
}

// ListAll returns a moderation page over every interest.
func (r *InterestRepository) ListAll(page, limit int) ([]models.Interest, error) {
	var items []models.Interest
	err := r.db.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).
		Preload("Sender").Preload("Receiver").Find(&items).Error
	return items, err
}

func (r *InterestRepository) CountCreatedSince(t time.Time) (int64, error) {
	var c int64
	err := r.db.Model(&models.Interest{}).Where("created_at >= ?", t).Count(&c).Error
	return c, err
}
