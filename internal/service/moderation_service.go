package service

import (
	"errors"
	"strings"

	"freeco/internal/domain"
	"freeco/internal/listing"
	"freeco/internal/models"
	"freeco/internal/repository"

	"gorm.io/gorm"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

var (
	ErrInvalidAction = errors.New(`invalid action, use "approve" or "reject"`)
	ErrInvalidIDs    = errors.New("invalid ids in request")
)

// MissingFieldsError rejects a profile review when the target profile is
// incomplete; it names the absent fields.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "user profile is incomplete: " + strings.Join(e.Fields, ", ")
}

// profileQueuePageSize is fixed for the moderation profile queue.
const profileQueuePageSize = 100

type ModerationService struct {
	userRepo     *repository.UserRepository
	listingRepo  *repository.ListingRepository
	interestRepo *repository.InterestRepository
	notifSvc     *NotificationService
}

func NewModerationService(
	userRepo *repository.UserRepository,
	listingRepo *repository.ListingRepository,
	interestRepo *repository.InterestRepository,
	notifSvc *NotificationService,
) *ModerationService {
	return &ModerationService{
		userRepo:     userRepo,
		listingRepo:  listingRepo,
		interestRepo: interestRepo,
		notifSvc:     notifSvc,
	}
}

// ProfileQueue lists plain users for review, fixed page size.
func (s *ModerationService) ProfileQueue(page int) ([]models.User, int, error) {
	if page < 1 {
		page = 1
	}
	users, err := s.userRepo.ListByRole(domain.RoleUser, page, profileQueuePageSize)
	return users, profileQueuePageSize, err
}

// ReviewProfile approves or rejects one profile. Incomplete profiles are
// rejected with the list of missing fields and no state change.
func (s *ModerationService) ReviewProfile(userID uint, action string) (*models.User, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, ErrInvalidAction
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if missing := missingProfileFields(u); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}
	u.IsApproved = action == ActionApprove
	if err := s.userRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func missingProfileFields(u *models.User) []string {
	var missing []string
	check := []struct {
		name, value string
	}{
		{"city", u.City},
		{"state", u.State},
		{"pincode", u.Pincode},
		{"gender", u.Gender},
		{"phoneNumber", u.PhoneNumber},
		{"lastName", u.LastName},
		{"firstName", u.FirstName},
	}
	for _, f := range check {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// BulkReviewProfiles validates every id before touching anything, then
// applies the approval flip as one multi-row update. No per-item
// notifications on this path.
func (s *ModerationService) BulkReviewProfiles(userIDs []uint, action string) (int64, error) {
	if action != ActionApprove && action != ActionReject {
		return 0, ErrInvalidAction
	}
	if len(userIDs) == 0 {
		return 0, ErrInvalidIDs
	}
	for _, id := range userIDs {
		if id == 0 {
			return 0, ErrInvalidIDs
		}
	}
	return s.userRepo.BulkSetApproval(userIDs, action == ActionApprove)
}

// InterestQueue pages over all interests for review.
func (s *ModerationService) InterestQueue(page, limit int) ([]models.Interest, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 100
	}
	return s.interestRepo.ListAll(page, limit)
}

// ReviewInterest toggles the moderation flag. This is orthogonal to the
// sender/receiver accept-reject lifecycle.
func (s *ModerationService) ReviewInterest(interestID uint, action string) (*models.Interest, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, ErrInvalidAction
	}
	i, err := s.interestRepo.GetByID(interestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterestNotFound
		}
		return nil, err
	}
	i.IsApproved = action == ActionApprove
	if err := s.interestRepo.Update(i); err != nil {
		return nil, err
	}
	return i, nil
}

// ListingQueueResult is one moderation page of listings, merged across
// types when the query asked for all.
type ListingQueueResult struct {
	Items       []models.Listing
	Total       int64
	TotalPages  int
	CurrentPage int
}

// ListingQueue lists listings for review: one type, or type "all" which
// splits the page limit evenly across the four types.
func (s *ModerationService) ListingQueue(tag string, page, limit int) (*ListingQueueResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	tags := listing.Tags()
	if tag != "" && tag != "all" {
		if !listing.Known(tag) {
			return nil, listing.ErrUnknownType
		}
		tags = []string{tag}
	}
	perType := limit
	pageForType := page
	if len(tags) > 1 {
		perType = limit / len(tags)
		if perType < 1 {
			perType = 1
		}
		pageForType = 1
	}
	var (
		items []models.Listing
		total int64
	)
	for _, t := range tags {
		page, n, err := s.listingRepo.List(t, repository.ListParams{Page: pageForType, Limit: perType})
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		total += n
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &ListingQueueResult{Items: items, Total: total, TotalPages: pages, CurrentPage: page}, nil
}

// ReviewListing approves (status active) or rejects (status inactive) one
// listing and notifies its owner.
func (s *ModerationService) ReviewListing(listingID uint, tag, action string) (*models.Listing, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, ErrInvalidAction
	}
	def, err := listing.Resolve(tag)
	if err != nil {
		return nil, err
	}
	l, err := s.listingRepo.GetByID(def.Tag, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	approved := action == ActionApprove
	status := domain.ListingStatusActive
	if !approved {
		status = domain.ListingStatusInactive
	}
	if err := s.listingRepo.UpdateStatus(def.Tag, l.ID, status); err != nil {
		return nil, err
	}
	l.Status = status
	_ = s.notifSvc.NotifyListingReviewed(l.UserID, def.Tag, approved, l.ID)
	return l, nil
}

// BulkReviewResult counts the outcome of a bulk listing review.
type BulkReviewResult struct {
	Total         int `json:"total"`
	Processed     int `json:"processed"`
	Failed        int `json:"failed"`
	Notifications int `json:"notifications"`
}

// BulkReviewListings applies the action per item, tolerating individual
// failures: one bad id or type never blocks the rest of the batch.
func (s *ModerationService) BulkReviewListings(refs []repository.IDRef, action string) (*BulkReviewResult, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, ErrInvalidAction
	}
	res := &BulkReviewResult{Total: len(refs)}
	for _, ref := range refs {
		if _, err := s.ReviewListing(ref.ID, ref.ListingType, action); err != nil {
			res.Failed++
			continue
		}
		res.Processed++
		res.Notifications++
	}
	return res, nil
}

// AllListingIDs returns every listing's id/type pair for moderation tooling.
func (s *ModerationService) AllListingIDs() ([]repository.IDRef, error) {
	return s.listingRepo.AllIDs()
}
