package listing

import (
	"strings"
	"testing"

	"freeco/internal/domain"
	"freeco/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() *models.Listing {
	return &models.Listing{
		ListingType:   domain.ListingTypeProduct,
		Title:         "Cricket Bat",
		City:          "New Delhi",
		State:         "Delhi",
		Pincode:       "110001",
		SubCategory:   "sports",
		Quantity:      2,
		TermsAccepted: true,
	}
}

func validMatrimony() *models.Listing {
	return &models.Listing{
		ListingType:   domain.ListingTypeMatrimony,
		City:          "Mumbai",
		State:         "Maharashtra",
		Pincode:       "400001",
		FirstName:     "Asha",
		LastName:      "Verma",
		Gender:        domain.GenderFemale,
		Age:           28,
		HeightCm:      160,
		WeightKg:      55,
		MaritalStatus: domain.MaritalSingle,
		Religion:      "Hindu",
		Occupation:    domain.OccupationEmployed,
		TermsAccepted: true,
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	names := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		name, _, _ := strings.Cut(f, ":")
		names = append(names, name)
	}
	return names
}

func TestResolve(t *testing.T) {
	for _, tag := range Tags() {
		def, err := Resolve(tag)
		require.NoError(t, err)
		assert.Equal(t, tag, def.Tag)
		assert.True(t, Known(tag))
	}

	_, err := Resolve("vehicle")
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.False(t, Known("vehicle"))
}

func TestTagsOrderAndCopy(t *testing.T) {
	tags := Tags()
	assert.Equal(t, []string{"product", "service", "job", "matrimony"}, tags)

	tags[0] = "mutated"
	assert.Equal(t, "product", Tags()[0])
}

func TestValidateProduct(t *testing.T) {
	def, _ := Resolve(domain.ListingTypeProduct)
	require.NoError(t, def.Validate(validProduct()))

	l := validProduct()
	l.Quantity = 0
	l.SubCategory = ""
	assert.ElementsMatch(t, []string{"quantity", "sub_category"}, fieldsOf(t, def.Validate(l)))
}

func TestValidateServiceAndJob(t *testing.T) {
	svcDef, _ := Resolve(domain.ListingTypeService)
	l := validProduct()
	l.ListingType = domain.ListingTypeService
	l.NumberOfServices = 1
	require.NoError(t, svcDef.Validate(l))

	jobDef, _ := Resolve(domain.ListingTypeJob)
	j := validProduct()
	j.ListingType = domain.ListingTypeJob
	j.Title = ""
	j.JobTitle = "Plumber Needed"
	j.NumberOfServices = 1
	require.NoError(t, jobDef.Validate(j))

	j.JobTitle = "  "
	assert.Contains(t, fieldsOf(t, jobDef.Validate(j)), "job_title")
}

func TestValidateMatrimony(t *testing.T) {
	def, _ := Resolve(domain.ListingTypeMatrimony)
	require.NoError(t, def.Validate(validMatrimony()))

	for _, tc := range []struct {
		name   string
		mutate func(*models.Listing)
		field  string
	}{
		{"underage", func(l *models.Listing) { l.Age = 17 }, "age"},
		{"over 80", func(l *models.Listing) { l.Age = 81 }, "age"},
		{"too short", func(l *models.Listing) { l.HeightCm = 99 }, "height_cm"},
		{"too heavy", func(l *models.Listing) { l.WeightKg = 301 }, "weight_kg"},
		{"bad gender", func(l *models.Listing) { l.Gender = "X" }, "gender"},
		{"bad marital", func(l *models.Listing) { l.MaritalStatus = "Complicated" }, "marital_status"},
		{"bad occupation", func(l *models.Listing) { l.Occupation = "Pirate" }, "occupation"},
		{"no religion", func(l *models.Listing) { l.Religion = "" }, "religion"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := validMatrimony()
			tc.mutate(l)
			assert.Contains(t, fieldsOf(t, def.Validate(l)), tc.field)
		})
	}
}

func TestValidateCommon(t *testing.T) {
	def, _ := Resolve(domain.ListingTypeProduct)

	l := validProduct()
	l.Title = strings.Repeat("x", 101)
	assert.Contains(t, fieldsOf(t, def.Validate(l)), "title")

	l = validProduct()
	l.Description = strings.Repeat("x", 1001)
	assert.Contains(t, fieldsOf(t, def.Validate(l)), "description")

	l = validProduct()
	l.Pincode = "1100"
	assert.Contains(t, fieldsOf(t, def.Validate(l)), "pincode")

	l = validProduct()
	l.TermsAccepted = false
	assert.Contains(t, fieldsOf(t, def.Validate(l)), "terms_accepted")
}

func TestValidateLocation(t *testing.T) {
	def, _ := Resolve(domain.ListingTypeProduct)

	l := validProduct()
	l.State = "Atlantis"
	assert.Contains(t, fieldsOf(t, def.Validate(l)), "state")

	// Mumbai is a real city, but not in Delhi.
	l = validProduct()
	l.State = "Delhi"
	l.City = "Mumbai"
	assert.Contains(t, fieldsOf(t, def.Validate(l)), "city")

	l = validProduct()
	l.State = "Delhi"
	l.City = "New Delhi"
	assert.NoError(t, def.Validate(l))
}

func TestMaxFilesPerVariant(t *testing.T) {
	prodDef, _ := Resolve(domain.ListingTypeProduct)
	l := validProduct()
	l.Images = []string{"a", "b", "c", "d"}
	require.NoError(t, prodDef.Validate(l))
	l.Images = append(l.Images, "e")
	assert.Contains(t, fieldsOf(t, prodDef.Validate(l)), "images")

	matDef, _ := Resolve(domain.ListingTypeMatrimony)
	m := validMatrimony()
	m.Images = []string{"a", "b", "c"}
	require.NoError(t, matDef.Validate(m))
	m.Images = append(m.Images, "d")
	assert.Contains(t, fieldsOf(t, matDef.Validate(m)), "images")
}
