package dto

import (
	"time"
)

// Pagination carries page metadata for list responses
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// SaunaSummary is the venue projection embedded in ladies day responses
type SaunaSummary struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	PriceRange string   `json:"price_range,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
}

// SourceUserSummary is the submitter projection embedded in ladies day responses
type SourceUserSummary struct {
	Username   string  `json:"username"`
	TrustScore float64 `json:"trust_score"`
}

// LadiesDayResponse represents a ladies day entry
type LadiesDayResponse struct {
	ID              string             `json:"id"`
	SaunaID         string             `json:"sauna_id"`
	DayOfWeek       *int               `json:"day_of_week,omitempty"`
	SpecificDate    *string            `json:"specific_date,omitempty"`
	StartTime       *string            `json:"start_time,omitempty"`
	EndTime         *string            `json:"end_time,omitempty"`
	IsOfficial      bool               `json:"is_official"`
	SourceType      string             `json:"source_type"`
	TrustScore      float64            `json:"trust_score"`
	SupportCount    int                `json:"support_count"`
	OppositionCount int                `json:"opposition_count"`
	CreatedAt       time.Time          `json:"created_at"`
	Sauna           *SaunaSummary      `json:"sauna,omitempty"`
	SourceUser      *SourceUserSummary `json:"source_user,omitempty"`
}

// CreateLadiesDayResponse wraps a newly submitted entry
type CreateLadiesDayResponse struct {
	Message   string            `json:"message"`
	LadiesDay LadiesDayResponse `json:"ladies_day"`
}

// LadiesDayListResponse wraps a filtered listing
type LadiesDayListResponse struct {
	LadiesDays []LadiesDayResponse `json:"ladies_days"`
}

// TodaysLadiesDaysResponse wraps the today view
type TodaysLadiesDaysResponse struct {
	Date       string              `json:"date"`
	DayOfWeek  int                 `json:"day_of_week"`
	LadiesDays []LadiesDayResponse `json:"ladies_days"`
}

// VoteResponse carries the recomputed aggregates after a vote
type VoteResponse struct {
	Message         string  `json:"message"`
	SupportCount    int     `json:"support_count"`
	OppositionCount int     `json:"opposition_count"`
	TrustScore      float64 `json:"trust_score"`
}

// FacilityResponse represents a sauna facility
type FacilityResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Temperature *float64 `json:"temperature,omitempty"`
	Description *string  `json:"description,omitempty"`
	IsWomenOnly bool     `json:"is_women_only"`
}

// SaunaResponse represents a sauna with its facilities and ladies days
type SaunaResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Address       string              `json:"address"`
	Latitude      float64             `json:"latitude"`
	Longitude     float64             `json:"longitude"`
	Phone         *string             `json:"phone,omitempty"`
	Website       *string             `json:"website,omitempty"`
	Description   *string             `json:"description,omitempty"`
	PriceRange    string              `json:"price_range"`
	Rating        float64             `json:"rating"`
	ReviewCount   int                 `json:"review_count"`
	FavoriteCount *int64              `json:"favorite_count,omitempty"`
	Distance      *float64            `json:"distance,omitempty"`
	IsFavorited   *bool               `json:"is_favorited,omitempty"`
	HasLadiesDay  *bool               `json:"has_ladies_day,omitempty"`
	Facilities    []FacilityResponse  `json:"facilities,omitempty"`
	LadiesDays    []LadiesDayResponse `json:"ladies_days,omitempty"`
	Reviews       []ReviewResponse    `json:"reviews,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// SaunaListResponse wraps a paginated sauna listing
type SaunaListResponse struct {
	Saunas     []SaunaResponse `json:"saunas"`
	Pagination Pagination      `json:"pagination"`
}

// CreateSaunaResponse wraps a newly registered sauna
type CreateSaunaResponse struct {
	Message string        `json:"message"`
	Sauna   SaunaResponse `json:"sauna"`
}

// FavoriteResponse reports the result of a favorite toggle
type FavoriteResponse struct {
	Message     string `json:"message"`
	IsFavorited bool   `json:"is_favorited"`
}

// FavoriteListResponse wraps a user's favorited saunas
type FavoriteListResponse struct {
	Favorites []SaunaResponse `json:"favorites"`
}

// ReviewUserSummary is the author projection embedded in review responses
type ReviewUserSummary struct {
	Username   string  `json:"username"`
	Avatar     *string `json:"avatar,omitempty"`
	TrustScore float64 `json:"trust_score"`
}

// ReviewResponse represents a review
type ReviewResponse struct {
	ID         string             `json:"id"`
	SaunaID    string             `json:"sauna_id"`
	UserID     string             `json:"user_id"`
	Rating     int                `json:"rating"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	VisitDate  time.Time          `json:"visit_date"`
	Visibility string             `json:"visibility"`
	LikeCount  int                `json:"like_count"`
	CreatedAt  time.Time          `json:"created_at"`
	User       *ReviewUserSummary `json:"user,omitempty"`
	Sauna      *SaunaSummary      `json:"sauna,omitempty"`
}

// CreateReviewResponse wraps a newly posted review
type CreateReviewResponse struct {
	Message string         `json:"message"`
	Review  ReviewResponse `json:"review"`
}

// ReviewListResponse wraps a paginated review listing
type ReviewListResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Pagination Pagination       `json:"pagination"`
}

// UserResponse represents a user profile
type UserResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Avatar            *string   `json:"avatar,omitempty"`
	TrustScore        float64   `json:"trust_score"`
	ContributionCount int       `json:"contribution_count"`
	IsVerified        bool      `json:"is_verified"`
	CreatedAt         time.Time `json:"created_at"`
}

// AuthResponse carries a profile plus a fresh JWT
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
