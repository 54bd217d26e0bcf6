package service

import (
	"context"
	"encoding/json"
	"time"

	"freeco/internal/cache"
	"freeco/internal/domain"
	"freeco/internal/listing"
	"freeco/internal/logger"
	"freeco/internal/models"
	"freeco/internal/repository"

	"go.uber.org/zap"
)

const dashboardCacheKey = "dashboard:snapshot"

// DashboardService recomputes the singleton summary row on demand. The
// recompute walks every collection, so the result is kept in redis for a
// short TTL; this path only serves the admin dashboard view.
type DashboardService struct {
	repo         *repository.DashboardRepository
	userRepo     *repository.UserRepository
	listingRepo  *repository.ListingRepository
	interestRepo *repository.InterestRepository
	cache        *cache.RedisCache
	cacheTTL     time.Duration
}

func NewDashboardService(
	repo *repository.DashboardRepository,
	userRepo *repository.UserRepository,
	listingRepo *repository.ListingRepository,
	interestRepo *repository.InterestRepository,
	c *cache.RedisCache,
	cacheTTL time.Duration,
) *DashboardService {
	return &DashboardService{
		repo:         repo,
		userRepo:     userRepo,
		listingRepo:  listingRepo,
		interestRepo: interestRepo,
		cache:        c,
		cacheTTL:     cacheTTL,
	}
}

// Statistics returns the current snapshot, from cache when fresh enough,
// otherwise fully recomputed and persisted.
func (s *DashboardService) Statistics(ctx context.Context) (*models.DashboardSnapshot, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, dashboardCacheKey); err == nil {
			var snap models.DashboardSnapshot
			if json.Unmarshal([]byte(raw), &snap) == nil {
				return &snap, nil
			}
		} else if !cache.IsMiss(err) {
			logger.L().Warn("dashboard cache read failed", zap.Error(err))
		}
	}
	snap, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Refresh recomputes every counter, saves the row, and refills the cache.
func (s *DashboardService) Refresh(ctx context.Context) (*models.DashboardSnapshot, error) {
	snap, err := s.repo.Get()
	if err != nil {
		return nil, err
	}

	if snap.TotalUsers, err = s.userRepo.CountAll(); err != nil {
		return nil, err
	}
	if snap.ActiveUsers, err = s.userRepo.CountActive(); err != nil {
		return nil, err
	}

	perType := map[string]*int64{
		domain.ListingTypeProduct:   &snap.ProductListings,
		domain.ListingTypeService:   &snap.ServiceListings,
		domain.ListingTypeJob:       &snap.JobListings,
		domain.ListingTypeMatrimony: &snap.MatrimonyListings,
	}
	for _, tag := range listing.Tags() {
		n, err := s.listingRepo.CountByType(tag)
		if err != nil {
			return nil, err
		}
		*perType[tag] = n
	}

	if snap.ActiveListings, err = s.listingRepo.CountByStatus(domain.ListingStatusActive); err != nil {
		return nil, err
	}
	if snap.InactiveListings, err = s.listingRepo.CountByStatus(domain.ListingStatusInactive); err != nil {
		return nil, err
	}
	if snap.PendingListings, err = s.listingRepo.CountByStatus(domain.ListingStatusPending); err != nil {
		return nil, err
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	if snap.NewUsers30d, err = s.userRepo.CountCreatedSince(thirtyDaysAgo); err != nil {
		return nil, err
	}
	if snap.NewInterests30d, err = s.interestRepo.CountCreatedSince(thirtyDaysAgo); err != nil {
		return nil, err
	}

	if err := s.repo.Save(snap); err != nil {
		return nil, err
	}
	s.fillCache(ctx, snap)
	return snap, nil
}

// SystemConfigInput applies partial updates to the persisted system config.
type SystemConfigInput struct {
	MaintenanceMode *bool   `json:"maintenance_mode"`
	DisclaimerText  *string `json:"disclaimer_text"`
	TermsOfService  *string `json:"terms_of_service"`
}

func (s *DashboardService) UpdateSystemConfig(ctx context.Context, in SystemConfigInput) (*models.DashboardSnapshot, error) {
	snap, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if in.MaintenanceMode != nil {
		snap.MaintenanceMode = *in.MaintenanceMode
	}
	if in.DisclaimerText != nil {
		snap.DisclaimerText = *in.DisclaimerText
	}
	if in.TermsOfService != nil {
		snap.TermsOfService = *in.TermsOfService
	}
	if err := s.repo.Save(snap); err != nil {
		return nil, err
	}
	s.fillCache(ctx, snap)
	return snap, nil
}

func (s *DashboardService) fillCache(ctx context.Context, snap *models.DashboardSnapshot) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, dashboardCacheKey, raw, s.cacheTTL); err != nil {
		logger.L().Warn("dashboard cache write failed", zap.Error(err))
	}
}
