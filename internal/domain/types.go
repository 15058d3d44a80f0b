package domain

import (
	"regexp"
	"time"
)

// SourceType tags the provenance of a ladies day entry
type SourceType string

const (
	// SourceTypeOfficial marks entries sourced from a verified channel (the venue itself)
	SourceTypeOfficial SourceType = "OFFICIAL"
	// SourceTypeUser marks community-submitted entries
	SourceTypeUser SourceType = "USER"
)

// VoteType is the kind of vote a user casts on a ladies day entry
type VoteType string

const (
	// VoteTypeSupport confirms the entry is accurate
	VoteTypeSupport VoteType = "SUPPORT"
	// VoteTypeOppose disputes the entry
	VoteTypeOppose VoteType = "OPPOSE"
)

// Visibility controls who can see a review
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityFriends Visibility = "FRIENDS"
	VisibilityPrivate Visibility = "PRIVATE"
)

// FacilityCategory classifies a sauna facility
type FacilityCategory string

const (
	FacilityCategorySauna   FacilityCategory = "SAUNA"
	FacilityCategoryBath    FacilityCategory = "BATH"
	FacilityCategoryAmenity FacilityCategory = "AMENITY"
	FacilityCategoryOther   FacilityCategory = "OTHER"
)

const (
	// TrustScoreMin is the floor of the community trust score range
	TrustScoreMin = 0.0
	// TrustScoreMax is the ceiling of the community trust score range
	TrustScoreMax = 5.0
	// DefaultUserTrustScore is the trust score assigned to newly registered users
	DefaultUserTrustScore = 3.0
)

// timeOfDayRe matches "HH:MM" local time-of-day strings, e.g. "10:00"
var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidSourceType reports whether s is a known source type
func IsValidSourceType(s SourceType) bool {
	return s == SourceTypeOfficial || s == SourceTypeUser
}

// IsValidVoteType reports whether v is a known vote type
func IsValidVoteType(v VoteType) bool {
	return v == VoteTypeSupport || v == VoteTypeOppose
}

// IsValidVisibility reports whether v is a known review visibility
func IsValidVisibility(v Visibility) bool {
	return v == VisibilityPublic || v == VisibilityFriends || v == VisibilityPrivate
}

// IsValidFacilityCategory reports whether c is a known facility category
func IsValidFacilityCategory(c FacilityCategory) bool {
	switch c {
	case FacilityCategorySauna, FacilityCategoryBath, FacilityCategoryAmenity, FacilityCategoryOther:
		return true
	}
	return false
}

// IsValidDayOfWeek reports whether d is a weekday index (0=Sunday .. 6=Saturday)
func IsValidDayOfWeek(d int) bool {
	return d >= 0 && d <= 6
}

// IsValidTimeOfDay reports whether s is a "HH:MM" time-of-day string
func IsValidTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}

// IsValidRating reports whether r is a 1-5 star review rating
func IsValidRating(r int) bool {
	return r >= 1 && r <= 5
}

// DayOfDate truncates t to day granularity in its own location.
// Ladies day specific dates are compared at this granularity.
func DayOfDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
