package service

import (
	"testing"

	"freeco/internal/domain"
	"freeco/internal/listing"
	"freeco/internal/models"
	"freeco/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newListingService(t *testing.T) (*ListingService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewListingService(repository.NewListingRepository(db), newNotifSvc(db)), db
}

func TestCreateForcesPendingAndOwner(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)

	l, err := svc.Create(domain.ListingTypeProduct, owner.ID, productInput())
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusPending, l.Status)
	assert.Equal(t, owner.ID, l.UserID)
	assert.Equal(t, domain.ListingTypeProduct, l.ListingType)

	var n models.Notification
	require.NoError(t, db.Where("user_id = ?", owner.ID).First(&n).Error)
	assert.Equal(t, domain.NotificationListingCreated, n.Type)
}

func TestCreateUnknownType(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)

	_, err := svc.Create("vehicle", owner.ID, productInput())
	assert.ErrorIs(t, err, listing.ErrUnknownType)
}

func TestCreateValidation(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)

	in := productInput()
	in.Quantity = 0
	in.TermsAccepted = false
	_, err := svc.Create(domain.ListingTypeProduct, owner.ID, in)

	var vErr *listing.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 2)
}

func TestCreateRejectsCityOutsideState(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)

	in := productInput()
	in.State = "Delhi"
	in.City = "Mumbai"
	_, err := svc.Create(domain.ListingTypeProduct, owner.ID, in)

	var vErr *listing.ValidationError
	require.ErrorAs(t, err, &vErr)

	in.City = "New Delhi"
	_, err = svc.Create(domain.ListingTypeProduct, owner.ID, in)
	assert.NoError(t, err)
}

func TestCreateMatrimonyBounds(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)

	in := matrimonyInput()
	_, err := svc.Create(domain.ListingTypeMatrimony, owner.ID, in)
	require.NoError(t, err)

	in.Age = 17
	_, err = svc.Create(domain.ListingTypeMatrimony, owner.ID, in)
	var vErr *listing.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields[0], "age")
}

func TestMatrimonyImageLimit(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)

	in := matrimonyInput()
	in.Images = []string{"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/c.jpg", "/uploads/d.jpg"}
	_, err := svc.Create(domain.ListingTypeMatrimony, owner.ID, in)
	var vErr *listing.ValidationError
	require.ErrorAs(t, err, &vErr)

	in.Images = in.Images[:3]
	_, err = svc.Create(domain.ListingTypeMatrimony, owner.ID, in)
	assert.NoError(t, err)
}

func TestGetIncrementsViews(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)
	l := seedListing(t, db, owner.ID, domain.ListingTypeProduct, domain.ListingStatusActive)

	got, err := svc.Get(domain.ListingTypeProduct, l.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Views)

	got, err = svc.Get(domain.ListingTypeProduct, l.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Views)
}

func TestGetWrongTypeIsNotFound(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)
	l := seedListing(t, db, owner.ID, domain.ListingTypeProduct, domain.ListingStatusActive)

	_, err := svc.Get(domain.ListingTypeService, l.ID)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestUpdateKeepsOwnerAndStatus(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)

	l, err := svc.Create(domain.ListingTypeProduct, owner.ID, productInput())
	require.NoError(t, err)

	in := productInput()
	in.Title = "Renamed Table"
	updated, err := svc.Update(domain.ListingTypeProduct, l.ID, owner.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Table", updated.Title)
	assert.Equal(t, owner.ID, updated.UserID)
	assert.Equal(t, domain.ListingStatusPending, updated.Status)
	assert.Equal(t, l.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateByNonOwnerIsNotFound(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)
	other := seedUser(t, db, domain.RoleUser)

	l, err := svc.Create(domain.ListingTypeProduct, owner.ID, productInput())
	require.NoError(t, err)

	_, err = svc.Update(domain.ListingTypeProduct, l.ID, other.ID, productInput())
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestSoftDeleteFlipsToInactive(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)
	l := seedListing(t, db, owner.ID, domain.ListingTypeProduct, domain.ListingStatusActive)

	require.NoError(t, svc.SoftDelete(domain.ListingTypeProduct, l.ID, owner.ID))

	got, err := svc.Get(domain.ListingTypeProduct, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusInactive, got.Status)
}

func TestSoftDeleteByNonOwner(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)
	other := seedUser(t, db, domain.RoleUser)
	l := seedListing(t, db, owner.ID, domain.ListingTypeProduct, domain.ListingStatusActive)

	err := svc.SoftDelete(domain.ListingTypeProduct, l.ID, other.ID)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestListPaginates(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)
	for i := 0; i < 5; i++ {
		seedListing(t, db, owner.ID, domain.ListingTypeProduct, domain.ListingStatusActive)
	}

	res, err := svc.List(domain.ListingTypeProduct, repository.ListParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.EqualValues(t, 5, res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 1, res.CurrentPage)
}

func TestMineGroupsByType(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)
	seedListing(t, db, owner.ID, domain.ListingTypeProduct, domain.ListingStatusActive)
	seedListing(t, db, owner.ID, domain.ListingTypeService, domain.ListingStatusPending)

	grouped, err := svc.Mine(owner.ID)
	require.NoError(t, err)
	assert.Len(t, grouped[domain.ListingTypeProduct], 1)
	assert.Len(t, grouped[domain.ListingTypeService], 1)
	assert.Empty(t, grouped[domain.ListingTypeJob])
}

func TestSearchFansOutAcrossTypes(t *testing.T) {
	svc, db := newListingService(t)
	owner := seedUser(t, db, domain.RoleUser)

	p := seedListing(t, db, owner.ID, domain.ListingTypeProduct, domain.ListingStatusActive)
	p.Title = "Guitar lessons material"
	require.NoError(t, db.Save(p).Error)
	s := seedListing(t, db, owner.ID, domain.ListingTypeService, domain.ListingStatusActive)
	s.Title = "Guitar tuition"
	require.NoError(t, db.Save(s).Error)

	out, err := svc.Search("guitar", "")
	require.NoError(t, err)
	assert.Len(t, out[domain.ListingTypeProduct], 1)
	assert.Len(t, out[domain.ListingTypeService], 1)

	out, err = svc.Search("guitar", domain.ListingTypeService)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = svc.Search("guitar", "vehicle")
	assert.ErrorIs(t, err, listing.ErrUnknownType)
}
