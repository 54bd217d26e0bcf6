package repository

import (
	"time"

	"freeco/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByPhone(phone string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("phone_number = ?", phone).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}

// UserListParams filters the admin user listing.
type UserListParams struct {
	Role     string
	IsActive *bool
	Search   string
	Page     int
	Limit    int
}

// List returns a page of users plus the total matching count, newest first.
func (r *UserRepository) List(p UserListParams) ([]models.User, int64, error) {
	q := r.db.Model(&models.User{})
	if p.Role != "" {
		q = q.Where("role = ?", p.Role)
	}
	if p.IsActive != nil {
		q = q.Where("is_active = ?", *p.IsActive)
	}
	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", like, like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	err := q.Order("created_at DESC").Limit(p.Limit).Offset((p.Page - 1) * p.Limit).Find(&users).Error
	return users, total, err
}

// ListByRole returns a moderation page of users with the given role.
func (r *UserRepository) ListByRole(role string, page, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Limit(limit).Offset((page - 1) * limit).Find(&users).Error
	return users, err
}

// BulkSetApproval flips is_approved for every id in one update.
func (r *UserRepository) BulkSetApproval(ids []uint, approved bool) (int64, error) {
	res := r.db.Model(&models.User{}).Where("id IN ?", ids).Update("is_approved", approved)
	return res.RowsAffected, res.Error
}

// BulkSetActive flips is_active for every id in one update.
func (r *UserRepository) BulkSetActive(ids []uint, active bool) (int64, error) {
	res := r.db.Model(&models.User{}).Where("id IN ?", ids).Update("is_active", active)
	return res.RowsAffected, res.Error
}

// BulkDelete removes the given users (soft delete via gorm.DeletedAt).
func (r *UserRepository) BulkDelete(ids []uint) (int64, error) {
	res := r.db.Where("id IN ?", ids).Delete(&models.User{})
	return res.RowsAffected, res.Error
}

func (r *UserRepository) CountAll() (int64, error) {
	var c int64
	err := r.db.Model(&models.User{}).Count(&c).Error
	return c, err
}

func (r *UserRepository) CountActive() (int64, error) {
	var c int64
	err := r.db.Model(&models.User{}).Where("is_active = ?", true).Count(&c).Error
	return c, err
}

func (r *UserRepository) CountCreatedSince(t time.Time) (int64, error) {
	var c int64
	err := r.db.Model(&models.User{}).Where("created_at >= ?", t).Count(&c).Error
	return c, err
}
