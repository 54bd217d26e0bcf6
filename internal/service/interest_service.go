package service

import (
	"errors"

	"freeco/internal/domain"
	"freeco/internal/listing"
	"freeco/internal/models"
	"freeco/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrSelfInterest      = errors.New("you cannot send an interest to yourself")
	ErrDuplicateInterest = errors.New("you have already sent an interest for this listing")
	ErrInterestNotFound  = errors.New("interest not found or already responded")
	ErrInvalidStatus     = errors.New("invalid status")
)

type InterestService struct {
	repo        *repository.InterestRepository
	listingRepo *repository.ListingRepository
	notifSvc    *NotificationService
}

func NewInterestService(repo *repository.InterestRepository, listingRepo *repository.ListingRepository, notifSvc *NotificationService) *InterestService {
	return &InterestService{repo: repo, listingRepo: listingRepo, notifSvc: notifSvc}
}

// Create records a pending interest from sender toward the listing's owner
// and notifies the owner. The duplicate pre-check and the insert are not
// atomic; concurrent identical requests can slip through.
func (s *InterestService) Create(senderID uint, tag string, listingID uint, message string) (*models.Interest, error) {
	if !listing.Known(tag) {
		return nil, listing.ErrUnknownType
	}
	l, err := s.listingRepo.GetByID(tag, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if senderID == l.UserID {
		return nil, ErrSelfInterest
	}
	if _, err := s.repo.GetPending(senderID, l.UserID, l.ID); err == nil {
		return nil, ErrDuplicateInterest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if message == "" {
		message = "Interested in your listing"
	}
	i := &models.Interest{
		SenderID:    senderID,
		ReceiverID:  l.UserID,
		ListingID:   l.ID,
		ListingType: tag,
		Status:      domain.InterestStatusPending,
		Message:     message,
	}
	if err := s.repo.Create(i); err != nil {
		return nil, err
	}
	_ = s.notifSvc.NotifyInterestReceived(l.UserID, tag, i.ID)
	return i, nil
}

// Respond resolves a pending interest. Only the receiver may respond, the
// transition is terminal, and the sender is notified of the outcome.
func (s *InterestService) Respond(interestID, receiverID uint, status, responseMessage string) (*models.Interest, error) {
	if status != domain.InterestStatusAccepted && status != domain.InterestStatusRejected {
		return nil, ErrInvalidStatus
	}
	i, err := s.repo.GetPendingForReceiver(interestID, receiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterestNotFound
		}
		return nil, err
	}
	i.Status = status
	i.ResponseMessage = responseMessage
	if err := s.repo.Update(i); err != nil {
		return nil, err
	}
	_ = s.notifSvc.NotifyInterestResolved(i.SenderID, status, i.ID)
	return i, nil
}

// InterestPage is one page of interests with the referenced listings
// joined in for display.
type InterestPage struct {
	Items       []InterestView
	Total       int64
	TotalPages  int
	CurrentPage int
}

// InterestView pairs an interest with its counterpart party and listing.
type InterestView struct {
	models.Interest
	Counterpart *models.User    `json:"counterpart,omitempty"`
	Listing     *models.Listing `json:"listing,omitempty"`
}

func (s *InterestService) ListSent(userID uint, status string, page, limit int) (*InterestPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	items, total, err := s.repo.ListBySender(userID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return s.assemble(items, total, page, limit, false), nil
}

func (s *InterestService) ListReceived(userID uint, status string, page, limit int) (*InterestPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	items, total, err := s.repo.ListByReceiver(userID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return s.assemble(items, total, page, limit, true), nil
}

func (s *InterestService) assemble(items []models.Interest, total int64, page, limit int, received bool) *InterestPage {
	views := make([]InterestView, 0, len(items))
	for _, i := range items {
		v := InterestView{Interest: i}
		if received {
			sender := i.Sender
			v.Counterpart = &sender
		} else {
			receiver := i.Receiver
			v.Counterpart = &receiver
		}
		// Weak reference; the listing may have been removed since.
		if l, err := s.listingRepo.GetByID(i.ListingType, i.ListingID); err == nil {
			v.Listing = l
		}
		views = append(views, v)
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &InterestPage{Items: views, Total: total, TotalPages: pages, CurrentPage: page}
}

// CheckExisting reports whether the user has already shown interest in the
// listing, for clients rendering an "already interested" state.
func (s *InterestService) CheckExisting(listingID, userID uint) (bool, error) {
	return s.repo.Exists(listingID, userID)
}
