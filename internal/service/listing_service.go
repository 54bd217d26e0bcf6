package service

import (
	"errors"

	"freeco/internal/domain"
	"freeco/internal/listing"
	"freeco/internal/models"
	"freeco/internal/repository"

	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingService struct {
	repo     *repository.ListingRepository
	notifSvc *NotificationService
}

func NewListingService(repo *repository.ListingRepository, notifSvc *NotificationService) *ListingService {
	return &ListingService{repo: repo, notifSvc: notifSvc}
}

// ListingInput carries every client-settable listing field. Owner, status,
// views and timestamps are never taken from the client.
type ListingInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	Pincode     string   `json:"pincode"`

	SubCategory      string `json:"sub_category"`
	Quantity         int    `json:"quantity"`
	NumberOfServices int    `json:"number_of_services"`
	JobTitle         string `json:"job_title"`
	JobDescription   string `json:"job_description"`

	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name"`
	LastName      string `json:"last_name"`
	Gender        string `json:"gender"`
	Age           int    `json:"age"`
	HeightCm      int    `json:"height_cm"`
	WeightKg      int    `json:"weight_kg"`
	MaritalStatus string `json:"marital_status"`
	Religion      string `json:"religion"`
	Caste         string `json:"caste"`
	Occupation    string `json:"occupation"`

	TermsAccepted bool `json:"terms_accepted"`
}

func (in *ListingInput) apply(l *models.Listing) {
	l.Title = in.Title
	l.Description = in.Description
	l.Tags = in.Tags
	if in.Images != nil {
		l.Images = in.Images
	}
	l.Address = in.Address
	l.City = in.City
	l.State = in.State
	l.Country = in.Country
	l.Pincode = in.Pincode
	l.SubCategory = in.SubCategory
	l.Quantity = in.Quantity
	l.NumberOfServices = in.NumberOfServices
	l.JobTitle = in.JobTitle
	l.JobDescription = in.JobDescription
	l.FirstName = in.FirstName
	l.MiddleName = in.MiddleName
	l.LastName = in.LastName
	l.Gender = in.Gender
	l.Age = in.Age
	l.HeightCm = in.HeightCm
	l.WeightKg = in.WeightKg
	l.MaritalStatus = in.MaritalStatus
	l.Religion = in.Religion
	l.Caste = in.Caste
	l.Occupation = in.Occupation
	l.TermsAccepted = in.TermsAccepted
}

// Create validates the payload against the variant's rules and persists a
// new listing. Status is forced to pending and ownership to ownerID no
// matter what the client sent.
func (s *ListingService) Create(tag string, ownerID uint, in ListingInput) (*models.Listing, error) {
	def, err := listing.Resolve(tag)
	if err != nil {
		return nil, err
	}
	l := &models.Listing{
		ListingType: tag,
		UserID:      ownerID,
		Status:      domain.ListingStatusPending,
	}
	in.apply(l)
	if err := def.Validate(l); err != nil {
		return nil, err
	}
	if err := s.repo.Create(l); err != nil {
		return nil, err
	}
	_ = s.notifSvc.NotifyListingCreated(ownerID, tag, l.ID)
	return l, nil
}

// ListResult is one page of listings plus its pagination metadata.
type ListResult struct {
	Items       []models.Listing
	Total       int64
	TotalPages  int
	CurrentPage int
}

func (s *ListingService) List(tag string, p repository.ListParams) (*ListResult, error) {
	if !listing.Known(tag) {
		return nil, listing.ErrUnknownType
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	items, total, err := s.repo.List(tag, p)
	if err != nil {
		return nil, err
	}
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return &ListResult{Items: items, Total: total, TotalPages: pages, CurrentPage: p.Page}, nil
}

// Get returns one listing and bumps its view counter.
func (s *ListingService) Get(tag string, id uint) (*models.Listing, error) {
	if !listing.Known(tag) {
		return nil, listing.ErrUnknownType
	}
	l, err := s.repo.GetByID(tag, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if err := s.repo.IncrementViews(l.ID); err == nil {
		l.Views++
	}
	return l, nil
}

// Update applies the patch to the caller's own listing. Owner, creation
// time and status cannot change through this path; absence and foreign
// ownership both surface as ErrListingNotFound to avoid existence leakage.
func (s *ListingService) Update(tag string, id, ownerID uint, in ListingInput) (*models.Listing, error) {
	def, err := listing.Resolve(tag)
	if err != nil {
		return nil, err
	}
	l, err := s.repo.GetOwned(tag, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	in.apply(l)
	if err := def.Validate(l); err != nil {
		return nil, err
	}
	if err := s.repo.Update(l); err != nil {
		return nil, err
	}
	return l, nil
}

// SoftDelete flips the caller's own listing to inactive; the row stays.
func (s *ListingService) SoftDelete(tag string, id, ownerID uint) error {
	if !listing.Known(tag) {
		return listing.ErrUnknownType
	}
	l, err := s.repo.GetOwned(tag, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	return s.repo.UpdateStatus(tag, l.ID, domain.ListingStatusInactive)
}

// Mine returns the caller's listings grouped by type tag.
func (s *ListingService) Mine(ownerID uint) (map[string][]models.Listing, error) {
	return s.repo.ListByUser(ownerID)
}

// Search runs the substring search over one type, or fans out across all
// four and returns a map keyed by tag.
func (s *ListingService) Search(query, tag string) (map[string][]models.Listing, error) {
	tags := listing.Tags()
	if tag != "" {
		if !listing.Known(tag) {
			return nil, listing.ErrUnknownType
		}
		tags = []string{tag}
	}
	out := make(map[string][]models.Listing, len(tags))
	for _, t := range tags {
		items, err := s.repo.Search(t, query)
		if err != nil {
			return nil, err
		}
		out[t] = items
	}
	return out, nil
}
