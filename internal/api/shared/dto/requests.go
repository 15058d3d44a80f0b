package dto

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/ladies-sauna/ls-api/internal/api/shared/constants"
	apierrors "github.com/ladies-sauna/ls-api/internal/api/shared/errors"
	"github.com/ladies-sauna/ls-api/internal/domain"
)

// dateLayout is the wire format for calendar dates
const dateLayout = "2006-01-02"

// CreateLadiesDayRequest represents the request body for submitting a ladies day entry
type CreateLadiesDayRequest struct {
	SaunaID      string            `json:"sauna_id"`
	DayOfWeek    *int              `json:"day_of_week,omitempty"`
	SpecificDate string            `json:"specific_date,omitempty"`
	StartTime    *string           `json:"start_time,omitempty"`
	EndTime      *string           `json:"end_time,omitempty"`
	IsOfficial   bool              `json:"is_official"`
	SourceType   domain.SourceType `json:"source_type"`
}

// Validate validates the request body
func (r *CreateLadiesDayRequest) Validate() error {
	// Validate: sauna ID must be provided
	if r.SaunaID == "" {
		return apierrors.NewValidationError("sauna_id is required")
	}

	// Validate: source type must be USER or OFFICIAL
	if !domain.IsValidSourceType(r.SourceType) {
		return apierrors.NewValidationError(fmt.Sprintf("source_type must be %s or %s", domain.SourceTypeUser, domain.SourceTypeOfficial))
	}

	// Validate: exactly the temporal key must be present
	if r.DayOfWeek == nil && r.SpecificDate == "" {
		return apierrors.NewValidationError("either day_of_week or specific_date must be provided")
	}
	if r.DayOfWeek != nil && r.SpecificDate != "" {
		return apierrors.NewValidationError("day_of_week and specific_date are mutually exclusive")
	}

	if r.DayOfWeek != nil && !domain.IsValidDayOfWeek(*r.DayOfWeek) {
		return apierrors.NewValidationError("day_of_week must be between 0 (Sunday) and 6 (Saturday)")
	}
	if r.SpecificDate != "" {
		if _, err := time.Parse(dateLayout, r.SpecificDate); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("specific_date must be formatted as %s", dateLayout))
		}
	}

	if r.StartTime != nil && !domain.IsValidTimeOfDay(*r.StartTime) {
		return apierrors.NewValidationError("start_time must be formatted as HH:MM")
	}
	if r.EndTime != nil && !domain.IsValidTimeOfDay(*r.EndTime) {
		return apierrors.NewValidationError("end_time must be formatted as HH:MM")
	}

	return nil
}

// ParsedSpecificDate returns the specific date as a day-granularity value,
// or nil when the entry is a weekly recurrence. Call Validate first.
func (r *CreateLadiesDayRequest) ParsedSpecificDate() *datatypes.Date {
	if r.SpecificDate == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, r.SpecificDate)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

// VoteRequest represents the request body for voting on a ladies day entry
type VoteRequest struct {
	VoteType domain.VoteType `json:"vote_type"`
}

// Validate validates the request body
func (r *VoteRequest) Validate() error {
	if !domain.IsValidVoteType(r.VoteType) {
		return apierrors.NewValidationError(fmt.Sprintf("vote_type must be %s or %s", domain.VoteTypeSupport, domain.VoteTypeOppose))
	}
	return nil
}

// FacilityInput represents a nested facility in a sauna creation request
type FacilityInput struct {
	Name        string                  `json:"name"`
	Category    domain.FacilityCategory `json:"category"`
	Temperature *float64                `json:"temperature,omitempty"`
	Description *string                 `json:"description,omitempty"`
	IsWomenOnly bool                    `json:"is_women_only"`
}

// CreateSaunaRequest represents the request body for registering a sauna
type CreateSaunaRequest struct {
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	Phone       *string         `json:"phone,omitempty"`
	Website     *string         `json:"website,omitempty"`
	Description *string         `json:"description,omitempty"`
	PriceRange  string          `json:"price_range"`
	Facilities  []FacilityInput `json:"facilities,omitempty"`
}

// Validate validates the request body
func (r *CreateSaunaRequest) Validate() error {
	if r.Name == "" || r.Address == "" || r.Latitude == nil || r.Longitude == nil || r.PriceRange == "" {
		return apierrors.NewValidationError("name, address, latitude, longitude and price_range are required")
	}
	if *r.Latitude < -90 || *r.Latitude > 90 {
		return apierrors.NewValidationError("latitude must be between -90 and 90")
	}
	if *r.Longitude < -180 || *r.Longitude > 180 {
		return apierrors.NewValidationError("longitude must be between -180 and 180")
	}
	for _, f := range r.Facilities {
		if f.Name == "" {
			return apierrors.NewValidationError("facility name is required")
		}
		if !domain.IsValidFacilityCategory(f.Category) {
			return apierrors.NewValidationError(fmt.Sprintf("invalid facility category: %s", f.Category))
		}
	}
	return nil
}

// CreateReviewRequest represents the request body for posting a review
type CreateReviewRequest struct {
	SaunaID    string            `json:"sauna_id"`
	Rating     int               `json:"rating"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	VisitDate  string            `json:"visit_date"`
	Visibility domain.Visibility `json:"visibility,omitempty"`
}

// Validate validates the request body
func (r *CreateReviewRequest) Validate() error {
	if r.SaunaID == "" || r.Rating == 0 || r.Title == "" || r.Content == "" || r.VisitDate == "" {
		return apierrors.NewValidationError("sauna_id, rating, title, content and visit_date are required")
	}
	if !domain.IsValidRating(r.Rating) {
		return apierrors.NewValidationError("rating must be between 1 and 5")
	}
	if _, err := time.Parse(dateLayout, r.VisitDate); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("visit_date must be formatted as %s", dateLayout))
	}
	if r.Visibility != "" && !domain.IsValidVisibility(r.Visibility) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid visibility: %s", r.Visibility))
	}
	return nil
}

// ParsedVisitDate returns the visit date. Call Validate first.
func (r *CreateReviewRequest) ParsedVisitDate() time.Time {
	t, _ := time.Parse(dateLayout, r.VisitDate)
	return t
}

// NormalizedVisibility returns the requested visibility, defaulting to PUBLIC
func (r *CreateReviewRequest) NormalizedVisibility() domain.Visibility {
	if r.Visibility == "" {
		return domain.VisibilityPublic
	}
	return r.Visibility
}

// UpdateReviewRequest represents the request body for editing a review.
// Nil fields are left unchanged.
type UpdateReviewRequest struct {
	Rating     *int               `json:"rating,omitempty"`
	Title      *string            `json:"title,omitempty"`
	Content    *string            `json:"content,omitempty"`
	VisitDate  *string            `json:"visit_date,omitempty"`
	Visibility *domain.Visibility `json:"visibility,omitempty"`
}

// Validate validates the request body
func (r *UpdateReviewRequest) Validate() error {
	if r.Rating == nil && r.Title == nil && r.Content == nil && r.VisitDate == nil && r.Visibility == nil {
		return apierrors.NewValidationError("at least one field must be provided")
	}
	if r.Rating != nil && !domain.IsValidRating(*r.Rating) {
		return apierrors.NewValidationError("rating must be between 1 and 5")
	}
	if r.VisitDate != nil {
		if _, err := time.Parse(dateLayout, *r.VisitDate); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("visit_date must be formatted as %s", dateLayout))
		}
	}
	if r.Visibility != nil && !domain.IsValidVisibility(*r.Visibility) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid visibility: %s", *r.Visibility))
	}
	return nil
}

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the request body
func (r *RegisterRequest) Validate() error {
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return apierrors.NewValidationError("username, email and password are required")
	}
	if !strings.Contains(r.Email, "@") {
		return apierrors.NewValidationError("email must be a valid address")
	}
	if len(r.Password) < constants.MIN_PASSWORD_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", constants.MIN_PASSWORD_LENGTH))
	}
	return nil
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the request body
func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return apierrors.NewValidationError("email and password are required")
	}
	return nil
}
