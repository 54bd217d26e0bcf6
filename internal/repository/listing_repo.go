package repository

import (
	"strings"

	"freeco/internal/listing"
	"freeco/internal/models"

	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(l *models.Listing) error {
	return r.db.Create(l).Error
}

func (r *ListingRepository) GetByID(tag string, id uint) (*models.Listing, error) {
	var l models.Listing
	err := r.db.Where("listing_type = ? AND id = ?", tag, id).Preload("User").First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetOwned returns the listing only if it belongs to userID. Absent and
// not-owned are indistinguishable to the caller.
func (r *ListingRepository) GetOwned(tag string, id, userID uint) (*models.Listing, error) {
	var l models.Listing
	err := r.db.Where("listing_type = ? AND id = ? AND user_id = ?", tag, id, userID).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) Update(l *models.Listing) error {
	return r.db.Save(l).Error
}

func (r *ListingRepository) UpdateStatus(tag string, id uint, status string) error {
	return r.db.Model(&models.Listing{}).Where("listing_type = ? AND id = ?", tag, id).Update("status", status).Error
}

func (r *ListingRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Listing{}).Where("id = ?", id).UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// ListParams filters and pages one listing type.
type ListParams struct {
	Status string
	Search string
	SortBy string // "field:asc" or "field:desc", default created_at desc
	Page   int
	Limit  int
}

// sortable whitelists order-by columns so SortBy can never inject SQL.
var sortable = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"views":      true,
	"status":     true,
}

func (p ListParams) order() string {
	if p.SortBy == "" {
		return "created_at DESC"
	}
	field, dir, _ := strings.Cut(p.SortBy, ":")
	if !sortable[field] {
		return "created_at DESC"
	}
	if dir == "desc" {
		return field + " DESC"
	}
	return field + " ASC"
}

// List returns a filtered page of one type plus the total matching count.
func (r *ListingRepository) List(tag string, p ListParams) ([]models.Listing, int64, error) {
	q := r.db.Model(&models.Listing{}).Where("listing_type = ?", tag)
	if p.Status != "" {
		q = q.Where("status = ?", p.Status)
	}
	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Listing
	err := q.Order(p.order()).Limit(p.Limit).Offset((p.Page - 1) * p.Limit).Preload("User").Find(&items).Error
	return items, total, err
}

// ListByUser returns all of one user's listings grouped by type tag.
func (r *ListingRepository) ListByUser(userID uint) (map[string][]models.Listing, error) {
	var items []models.Listing
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.Listing, len(listing.Tags()))
	for _, tag := range listing.Tags() {
		grouped[tag] = []models.Listing{}
	}
	for _, l := range items {
		grouped[l.ListingType] = append(grouped[l.ListingType], l)
	}
	return grouped, nil
}

// Search does the case-insensitive substring match over title/description
// for one type tag.
func (r *ListingRepository) Search(tag, query string) ([]models.Listing, error) {
	like := "%" + query + "%"
	var items []models.Listing
	err := r.db.Where("listing_type = ?", tag).
		Where("title LIKE ? OR description LIKE ?", like, like).
		Order("created_at DESC").Find(&items).Error
	return items, err
}

// BulkUpdateStatus sets status on every id of one type in a single update.
func (r *ListingRepository) BulkUpdateStatus(tag string, ids []uint, status string) (int64, error) {
	res := r.db.Model(&models.Listing{}).Where("listing_type = ? AND id IN ?", tag, ids).Update("status", status)
	return res.RowsAffected, res.Error
}

// BulkDelete removes the given listings of one type.
func (r *ListingRepository) BulkDelete(tag string, ids []uint) (int64, error) {
	res := r.db.Where("listing_type = ? AND id IN ?", tag, ids).Delete(&models.Listing{})
	return res.RowsAffected, res.Error
}

// IDRef names one listing by id and type, for moderation bulk responses.
type IDRef struct {
	ID          uint   `json:"id"`
	ListingType string `json:"listing_type"`
}

// AllIDs returns every listing's (id, type) pair, newest first.
func (r *ListingRepository) AllIDs() ([]IDRef, error) {
	var refs []IDRef
	err := r.db.Model(&models.Listing{}).
		Select("id, listing_type").Order("created_at DESC").Scan(&refs).Error
	return refs, err
}

func (r *ListingRepository) CountByType(tag string) (int64, error) {
	var c int64
	err := r.db.Model(&models.Listing{}).Where("listing_type = ?", tag).Count(&c).Error
	return c, err
}

func (r *ListingRepository) CountByStatus(status string) (int64, error) {
	var c int64
	err := r.db.Model(&models.Listing{}).Where("status = ?", status).Count(&c).Error
	return c, err
}
