package service

import (
	"context"
	"testing"
	"time"

	"freeco/config"
	"freeco/internal/cache"
	"freeco/internal/domain"
	"freeco/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(t *testing.T, c *cache.RedisCache) (*DashboardService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewDashboardService(
		repository.NewDashboardRepository(db),
		repository.NewUserRepository(db),
		repository.NewListingRepository(db),
		repository.NewInterestRepository(db),
		c,
		time.Minute,
	)
	return svc, db
}

func TestRefreshCounts(t *testing.T) {
	svc, db := newDashboardService(t, nil)
	owner := seedUser(t, db, domain.RoleUser)
	inactive := seedUser(t, db, domain.RoleUser)
	inactive.IsActive = false
	require.NoError(t, db.Save(inactive).Error)

	seedListing(t, db, owner.ID, domain.ListingTypeProduct, domain.ListingStatusActive)
	seedListing(t, db, owner.ID, domain.ListingTypeProduct, domain.ListingStatusPending)
	seedListing(t, db, owner.ID, domain.ListingTypeMatrimony, domain.ListingStatusInactive)

	snap, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, snap.TotalUsers)
	assert.EqualValues(t, 1, snap.ActiveUsers)
	assert.EqualValues(t, 2, snap.ProductListings)
	assert.EqualValues(t, 1, snap.MatrimonyListings)
	assert.EqualValues(t, 0, snap.ServiceListings)
	assert.EqualValues(t, 1, snap.ActiveListings)
	assert.EqualValues(t, 1, snap.PendingListings)
	assert.EqualValues(t, 1, snap.InactiveListings)
	assert.EqualValues(t, 2, snap.NewUsers30d)
}

func TestRefreshIsIdempotent(t *testing.T) {
	svc, db := newDashboardService(t, nil)
	owner := seedUser(t, db, domain.RoleUser)
	seedListing(t, db, owner.ID, domain.ListingTypeProduct, domain.ListingStatusActive)

	first, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	second, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.TotalUsers, second.TotalUsers)
	assert.Equal(t, first.ProductListings, second.ProductListings)
}

func TestStatisticsServedFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	c := cache.NewRedisCache(&config.RedisConfig{Addr: mr.Addr()})
	svc, db := newDashboardService(t, c)
	seedUser(t, db, domain.RoleUser)

	snap, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, snap.TotalUsers)

	// A second user does not show up until the cached copy expires.
	seedUser(t, db, domain.RoleUser)
	cached, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, cached.TotalUsers)

	mr.FastForward(2 * time.Minute)
	fresh, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, fresh.TotalUsers)
}

func TestUpdateSystemConfigPartial(t *testing.T) {
	svc, _ := newDashboardService(t, nil)

	on := true
	text := "use at your own risk"
	snap, err := svc.UpdateSystemConfig(context.Background(), SystemConfigInput{
		MaintenanceMode: &on,
		DisclaimerText:  &text,
	})
	require.NoError(t, err)
	assert.True(t, snap.MaintenanceMode)
	assert.Equal(t, "use at your own risk", snap.DisclaimerText)

	off := false
	snap, err = svc.UpdateSystemConfig(context.Background(), SystemConfigInput{MaintenanceMode: &off})
	require.NoError(t, err)
	assert.False(t, snap.MaintenanceMode)
	// Untouched fields keep their previous values.
	assert.Equal(t, "use at your own risk", snap.DisclaimerText)
}
