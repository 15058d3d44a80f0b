package rest

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ladies-sauna/ls-api/internal/api/shared/constants"
	"github.com/ladies-sauna/ls-api/internal/domain"
)

// ListSaunasQueryParams holds query parameters for GET /saunas
type ListSaunasQueryParams struct {
	// Location for proximity sorting; both must be present to take effect
	Latitude  *float64 `form:"lat"`
	Longitude *float64 `form:"lng"`

	// Filters
	HasLadiesDay bool     `form:"has_ladies_day"`
	Facilities   []string `form:"facility"`

	// Pagination
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// Validate validates the query parameters
func (p *ListSaunasQueryParams) Validate() error {
	if (p.Latitude == nil) != (p.Longitude == nil) {
		return errBothCoordinates
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		return errLatitudeRange
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		return errLongitudeRange
	}
	return nil
}

// ListLadiesDaysQueryParams holds query parameters for GET /ladies-days
type ListLadiesDaysQueryParams struct {
	SaunaID   string `form:"sauna_id"`
	Date      string `form:"date"`
	DayOfWeek *int   `form:"day_of_week"`
}

// Validate validates the query parameters
func (p *ListLadiesDaysQueryParams) Validate() error {
	if p.Date != "" {
		if _, err := time.Parse("2006-01-02", p.Date); err != nil {
			return errDateFormat
		}
	}
	if p.DayOfWeek != nil && !domain.IsValidDayOfWeek(*p.DayOfWeek) {
		return errDayOfWeekRange
	}
	return nil
}

// ParsedDate returns the date filter, nil when absent. Call Validate first.
func (p *ListLadiesDaysQueryParams) ParsedDate() *datatypes.Date {
	if p.Date == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

// ListReviewsQueryParams holds query parameters for GET /reviews.
// Filtering by author returns that author's reviews across all visibilities;
// without a user filter the listing is public reviews only.
type ListReviewsQueryParams struct {
	SaunaID string `form:"sauna_id"`
	UserID  string `form:"user_id"`
	Page    int    `form:"page,default=1"`
	Limit   int    `form:"limit,default=10"`
}

var (
	errBothCoordinates = paramError("lat and lng must be provided together")
	errLatitudeRange   = paramError("lat must be between -90 and 90")
	errLongitudeRange  = paramError("lng must be between -180 and 180")
	errDateFormat      = paramError("date must be formatted as 2006-01-02")
	errDayOfWeekRange  = paramError("day_of_week must be between 0 (Sunday) and 6 (Saturday)")
)

type paramError string

func (e paramError) Error() string {
	return string(e)
}

// ParseListSaunasQuery parses query parameters for GET /saunas
func ParseListSaunasQuery(c *gin.Context) (*ListSaunasQueryParams, error) {
	var params ListSaunasQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}
	return &params, nil
}

// ParseListLadiesDaysQuery parses query parameters for GET /ladies-days
func ParseListLadiesDaysQuery(c *gin.Context) (*ListLadiesDaysQueryParams, error) {
	var params ListLadiesDaysQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// ParseListReviewsQuery parses query parameters for GET /reviews
func ParseListReviewsQuery(c *gin.Context) (*ListReviewsQueryParams, error) {
	var params ListReviewsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}
	return &params, nil
}
