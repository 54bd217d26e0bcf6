// Package listing holds the closed registry of listing variants. Every
// listing, interest, and moderation operation resolves the type tag here
// first; an unrecognized tag short-circuits with ErrUnknownType.
package listing

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"freeco/internal/domain"
	"freeco/internal/location"
	"freeco/internal/models"
)

var ErrUnknownType = errors.New("invalid listing type")

// ValidationError reports which fields failed validation for a variant.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// Definition describes one listing variant.
type Definition struct {
	Tag      string
	Label    string
	MaxFiles int
	validate func(l *models.Listing, v *validator)
}

var registry = map[string]Definition{
	domain.ListingTypeProduct: {
		Tag:      domain.ListingTypeProduct,
		Label:    "Product",
		MaxFiles: 4,
		validate: validateProduct,
	},
	domain.ListingTypeService: {
		Tag:      domain.ListingTypeService,
		Label:    "Service",
		MaxFiles: 4,
		validate: validateService,
	},
	domain.ListingTypeJob: {
		Tag:      domain.ListingTypeJob,
		Label:    "Job",
		MaxFiles: 4,
		validate: validateJob,
	},
	domain.ListingTypeMatrimony: {
		Tag:      domain.ListingTypeMatrimony,
		Label:    "Matrimony",
		MaxFiles: 3,
		validate: validateMatrimony,
	},
}

// tags in stable order, for fan-out operations.
var tags = []string{
	domain.ListingTypeProduct,
	domain.ListingTypeService,
	domain.ListingTypeJob,
	domain.ListingTypeMatrimony,
}

// Resolve returns the variant definition for a type tag.
func Resolve(tag string) (Definition, error) {
	def, ok := registry[tag]
	if !ok {
		return Definition{}, ErrUnknownType
	}
	return def, nil
}

// Known reports whether tag names a registered variant.
func Known(tag string) bool {
	_, ok := registry[tag]
	return ok
}

// Tags returns all type tags in registration order.
func Tags() []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// Validate runs the shared and variant-specific checks for the definition.
func (d Definition) Validate(l *models.Listing) error {
	v := &validator{}
	validateCommon(l, d.MaxFiles, v)
	d.validate(l, v)
	if len(v.fields) > 0 {
		return &ValidationError{Fields: v.fields}
	}
	return nil
}

type validator struct {
	fields []string
}

func (v *validator) fail(field, reason string) {
	v.fields = append(v.fields, fmt.Sprintf("%s: %s", field, reason))
}

var pincodeRe = regexp.MustCompile(`^\d{6}$`)

func validateCommon(l *models.Listing, maxFiles int, v *validator) {
	if len(l.Title) > 100 {
		v.fail("title", "cannot be more than 100 characters")
	}
	if len(l.Description) > 1000 {
		v.fail("description", "cannot be more than 1000 characters")
	}
	if !location.ValidState(l.State) {
		v.fail("state", "unknown state")
	} else if !location.ValidCity(l.State, l.City) {
		v.fail("city", "not a valid city for the chosen state")
	}
	if !pincodeRe.MatchString(l.Pincode) {
		v.fail("pincode", "must be a valid 6-digit pincode")
	}
	if len(l.Images) > maxFiles {
		v.fail("images", fmt.Sprintf("maximum of %d files allowed", maxFiles))
	}
	if !l.TermsAccepted {
		v.fail("terms_accepted", "you must accept the terms and conditions")
	}
}

func validateProduct(l *models.Listing, v *validator) {
	if strings.TrimSpace(l.Title) == "" {
		v.fail("title", "product title is required")
	}
	if strings.TrimSpace(l.SubCategory) == "" {
		v.fail("sub_category", "sub-category is required")
	}
	if l.Quantity < 1 {
		v.fail("quantity", "minimum quantity is 1")
	}
}

func validateService(l *models.Listing, v *validator) {
	if strings.TrimSpace(l.Title) == "" {
		v.fail("title", "service title is required")
	}
	if strings.TrimSpace(l.SubCategory) == "" {
		v.fail("sub_category", "sub-category is required")
	}
	if l.NumberOfServices < 1 {
		v.fail("number_of_services", "minimum number of services is 1")
	}
}

func validateJob(l *models.Listing, v *validator) {
	if strings.TrimSpace(l.JobTitle) == "" {
		v.fail("job_title", "job title is required")
	}
	if strings.TrimSpace(l.SubCategory) == "" {
		v.fail("sub_category", "sub-category is required")
	}
	if l.NumberOfServices < 1 {
		v.fail("number_of_services", "minimum number of positions is 1")
	}
}

func validateMatrimony(l *models.Listing, v *validator) {
	if strings.TrimSpace(l.FirstName) == "" {
		v.fail("first_name", "first name is required")
	}
	if strings.TrimSpace(l.LastName) == "" {
		v.fail("last_name", "last name is required")
	}
	if !domain.ValidGender(l.Gender) {
		v.fail("gender", "gender is required")
	}
	if l.Age < 18 || l.Age > 80 {
		v.fail("age", "age must be between 18 and 80")
	}
	if l.HeightCm < 100 || l.HeightCm > 250 {
		v.fail("height_cm", "height must be between 100 and 250 cm")
	}
	if l.WeightKg < 30 || l.WeightKg > 300 {
		v.fail("weight_kg", "weight must be between 30 and 300 kg")
	}
	if !domain.ValidMaritalStatus(l.MaritalStatus) {
		v.fail("marital_status", "marital status is required")
	}
	if strings.TrimSpace(l.Religion) == "" {
		v.fail("religion", "religion is required")
	}
	if !domain.ValidOccupation(l.Occupation) {
		v.fail("occupation", "occupation is required")
	}
}
