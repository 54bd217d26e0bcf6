package domain

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

const (
	ListingTypeProduct   = "product"
	ListingTypeService   = "service"
	ListingTypeJob       = "job"
	ListingTypeMatrimony = "matrimony"
)

const (
	ListingStatusPending  = "pending"
	ListingStatusActive   = "active"
	ListingStatusInactive = "inactive"
	ListingStatusExpired  = "expired"
)

const (
	InterestStatusPending  = "pending"
	InterestStatusAccepted = "accepted"
	InterestStatusRejected = "rejected"
)

const (
	NotificationInterestReceived = "interest_received"
	NotificationInterestAccepted = "interest_accepted"
	NotificationInterestRejected = "interest_rejected"
	NotificationListingCreated   = "listing_created"
	NotificationListingUpdated   = "listing_updated"
	NotificationListingApproved  = "listing_approved"
	NotificationListingRejected  = "listing_rejected"
	NotificationMessage          = "message"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

const (
	MaritalSingle   = "Single"
	MaritalMarried  = "Married"
	MaritalDivorced = "Divorced"
	MaritalWidowed  = "Widowed"
)

const (
	OccupationEmployed     = "Employed"
	OccupationSelfEmployed = "Self-Employed"
	OccupationStudent      = "Student"
	OccupationUnemployed   = "Unemployed"
)

func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

func ValidMaritalStatus(m string) bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

func ValidOccupation(o string) bool {
	switch o {
	case OccupationEmployed, OccupationSelfEmployed, OccupationStudent, OccupationUnemployed:
		return true
	}
	return false
}
