package repository

import (
	"time"

	"freeco/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// ListByUser returns a page of the user's notifications, newest first,
// optionally filtered by read state, plus the total matching count.
func (r *NotificationRepository) ListByUser(userID uint, isRead *bool, page, limit int) ([]models.Notification, int64, error) {
	q := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if isRead != nil {
		q = q.Where("is_read = ?", *isRead)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Notification
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&items).Error
	return items, total, err
}

// MarkRead flips is_read on the given ids, scoped to the owner, and
// returns how many rows changed. An empty id list marks everything unread.
func (r *NotificationRepository) MarkRead(userID uint, ids []uint) (int64, error) {
	q := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false)
	if len(ids) > 0 {
		q = q.Where("id IN ?", ids)
	}
	res := q.Update("is_read", true)
	return res.RowsAffected, res.Error
}

// DeleteOlderThan removes the user's notifications created before cutoff.
func (r *NotificationRepository) DeleteOlderThan(userID uint, cutoff time.Time) (int64, error) {
	res := r.db.Where("user_id = ? AND created_at < ?", userID, cutoff).Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}

func (r *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&c).Error
	return c, err
}
