package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/ladies-sauna/ls-api/internal/domain"
	"github.com/ladies-sauna/ls-api/internal/store/schema"
)

// LadiesDayQueryFilter holds the optional filters for listing ladies days.
// Absent filters impose no constraint; present filters are ANDed.
type LadiesDayQueryFilter struct {
	SaunaID      string
	SpecificDate *datatypes.Date
	DayOfWeek    *int
}

// SaunaQueryFilter holds filters and pagination for listing saunas
type SaunaQueryFilter struct {
	HasLadiesDay bool
	Facilities   []string
	Limit        int
	Offset       int
}

// ReviewQueryFilter holds filters and pagination for listing reviews.
// PublicOnly restricts results to PUBLIC visibility; it is dropped when
// filtering by author so users can see their own private reviews.
type ReviewQueryFilter struct {
	SaunaID    string
	UserID     string
	PublicOnly bool
	Limit      int
	Offset     int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks
type Store interface {
	// CreateUser persists a new user
	CreateUser(ctx context.Context, user *schema.User) error
	// GetUserByID retrieves a user by ID, nil when absent
	GetUserByID(ctx context.Context, id string) (*schema.User, error)
	// GetUserByEmail retrieves a user by email, nil when absent
	GetUserByEmail(ctx context.Context, email string) (*schema.User, error)
	// GetUserByUsername retrieves a user by username, nil when absent
	GetUserByUsername(ctx context.Context, username string) (*schema.User, error)
	// IncrementUserContribution adds one to the user's contribution counter
	IncrementUserContribution(ctx context.Context, userID string) error

	// CreateSauna persists a new sauna together with its nested facilities
	CreateSauna(ctx context.Context, sauna *schema.Sauna) error
	// GetSaunaByID retrieves a bare sauna row, nil when absent
	GetSaunaByID(ctx context.Context, id string) (*schema.Sauna, error)
	// GetSaunaDetail retrieves a sauna with facilities, ladies days
	// (trust score descending, with submitters), and the latest public reviews
	GetSaunaDetail(ctx context.Context, id string, reviewLimit int) (*schema.Sauna, error)
	// ListSaunas retrieves saunas with facilities and ladies days, rating
	// descending then review count descending, plus the unpaginated total
	ListSaunas(ctx context.Context, filter SaunaQueryFilter) ([]*schema.Sauna, int64, error)
	// UpdateSaunaRating overwrites the derived rating aggregates of a sauna
	UpdateSaunaRating(ctx context.Context, saunaID string, rating float64, reviewCount int) error
	// CountSaunaReviews counts public reviews for a sauna
	CountSaunaReviews(ctx context.Context, saunaID string) (int64, error)
	// CountSaunaFavorites counts favorites for a sauna
	CountSaunaFavorites(ctx context.Context, saunaID string) (int64, error)

	// CreateLadiesDay persists a new ladies day entry
	CreateLadiesDay(ctx context.Context, entry *schema.LadiesDay) error
	// GetLadiesDayByID retrieves a bare entry, nil when absent
	GetLadiesDayByID(ctx context.Context, id string) (*schema.LadiesDay, error)
	// GetLadiesDayWithRelations retrieves an entry with its sauna and submitter
	GetLadiesDayWithRelations(ctx context.Context, id string) (*schema.LadiesDay, error)
	// FindDuplicateLadiesDay looks up an entry with the same sauna, temporal
	// key and submitting user; nil when none exists
	FindDuplicateLadiesDay(ctx context.Context, saunaID string, dayOfWeek *int, specificDate *datatypes.Date, sourceUserID string) (*schema.LadiesDay, error)
	// ListLadiesDays retrieves entries matching the filter, trust score
	// descending, support count descending, creation time descending
	ListLadiesDays(ctx context.Context, filter LadiesDayQueryFilter) ([]*schema.LadiesDay, error)
	// ListTodaysLadiesDays retrieves the union of entries recurring on the
	// given weekday and entries dated exactly the given date, trust score
	// descending then support count descending
	ListTodaysLadiesDays(ctx context.Context, dayOfWeek int, date datatypes.Date) ([]*schema.LadiesDay, error)
	// UpdateLadiesDayScore overwrites the derived vote aggregates of an entry
	UpdateLadiesDayScore(ctx context.Context, id string, supportCount, oppositionCount int, trustScore float64) error

	// GetVote retrieves the live vote of a user on an entry, nil when absent
	GetVote(ctx context.Context, userID, ladiesDayID string) (*schema.Vote, error)
	// CreateVote persists a new vote
	CreateVote(ctx context.Context, vote *schema.Vote) error
	// UpdateVoteType flips an existing vote in place
	UpdateVoteType(ctx context.Context, voteID string, voteType domain.VoteType) error
	// ListVotesByLadiesDay retrieves the full vote ledger for an entry
	ListVotesByLadiesDay(ctx context.Context, ladiesDayID string) ([]schema.Vote, error)

	// GetFavorite retrieves a user's favorite for a sauna, nil when absent
	GetFavorite(ctx context.Context, userID, saunaID string) (*schema.Favorite, error)
	// CreateFavorite persists a new favorite
	CreateFavorite(ctx context.Context, favorite *schema.Favorite) error
	// DeleteFavorite removes a favorite
	DeleteFavorite(ctx context.Context, favoriteID string) error
	// ListFavoritesWithSaunas retrieves a user's favorites newest first, each
	// with its sauna and the sauna's ladies days matching today
	ListFavoritesWithSaunas(ctx context.Context, userID string, dayOfWeek int, date datatypes.Date) ([]schema.Favorite, error)

	// CreateReview persists a new review
	CreateReview(ctx context.Context, review *schema.Review) error
	// GetReviewByID retrieves a review, nil when absent
	GetReviewByID(ctx context.Context, id string) (*schema.Review, error)
	// FindReviewByUserAndSauna retrieves a user's review of a sauna, nil when absent
	FindReviewByUserAndSauna(ctx context.Context, userID, saunaID string) (*schema.Review, error)
	// ListReviews retrieves reviews matching the filter, newest first, with
	// authors and saunas, plus the unpaginated total
	ListReviews(ctx context.Context, filter ReviewQueryFilter) ([]*schema.Review, int64, error)
	// ListPublicReviewRatings retrieves the ratings of all public reviews of
	// a sauna, for re-averaging
	ListPublicReviewRatings(ctx context.Context, saunaID string) ([]int, error)
	// UpdateReview persists changes to an existing review
	UpdateReview(ctx context.Context, review *schema.Review) error
	// DeleteReview removes a review
	DeleteReview(ctx context.Context, id string) error

	// Ping verifies database connectivity
	Ping(ctx context.Context) error
}

// ConnectionPoolSettings mirror database/sql pool knobs with defaults applied
type ConnectionPoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}
