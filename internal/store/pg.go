package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ladies-sauna/ls-api/internal/domain"
	"github.com/ladies-sauna/ls-api/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.User{},
		&schema.Sauna{},
		&schema.Facility{},
		&schema.LadiesDay{},
		&schema.Vote{},
		&schema.Review{},
		&schema.Favorite{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	settings := NormalizeConnectionPoolSettings(ConnectionPoolSettings{
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
		ConnMaxIdleTime: connMaxIdleTime,
	})

	sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
	sqlDB.SetMaxIdleConns(settings.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(settings.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(settings.ConnMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings.
// database/sql treats MaxOpenConns=0 as "unlimited" and MaxIdleConns=0 as
// "no idle connections", so zeros are replaced rather than passed through.
func NormalizeConnectionPoolSettings(s ConnectionPoolSettings) ConnectionPoolSettings {
	if s.MaxOpenConns == 0 {
		s.MaxOpenConns = 20
	}
	if s.MaxIdleConns == 0 {
		s.MaxIdleConns = 5
	}
	if s.ConnMaxLifetime == 0 {
		s.ConnMaxLifetime = 5 * time.Minute
	}
	if s.ConnMaxIdleTime == 0 {
		s.ConnMaxIdleTime = 10 * time.Minute
	}
	if s.MaxIdleConns > s.MaxOpenConns {
		s.MaxIdleConns = s.MaxOpenConns
	}
	return s
}

// CreateUser persists a new user
func (s *pgStore) CreateUser(ctx context.Context, user *schema.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (s *pgStore) GetUserByID(ctx context.Context, id string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (s *pgStore) GetUserByEmail(ctx context.Context, email string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (s *pgStore) GetUserByUsername(ctx context.Context, username string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// IncrementUserContribution adds one to the user's contribution counter
func (s *pgStore) IncrementUserContribution(ctx context.Context, userID string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Where("id = ?", userID).
		UpdateColumn("contribution_count", gorm.Expr("contribution_count + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment contribution count: %w", err)
	}
	return nil
}

// CreateSauna persists a new sauna together with its nested facilities
func (s *pgStore) CreateSauna(ctx context.Context, sauna *schema.Sauna) error {
	if err := s.db.WithContext(ctx).Create(sauna).Error; err != nil {
		return fmt.Errorf("failed to create sauna: %w", err)
	}
	return nil
}

// GetSaunaByID retrieves a bare sauna row
func (s *pgStore) GetSaunaByID(ctx context.Context, id string) (*schema.Sauna, error) {
	var sauna schema.Sauna
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&sauna).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sauna: %w", err)
	}
	return &sauna, nil
}

// GetSaunaDetail retrieves a sauna with facilities, ladies days and the
// latest public reviews
func (s *pgStore) GetSaunaDetail(ctx context.Context, id string, reviewLimit int) (*schema.Sauna, error) {
	var sauna schema.Sauna
	err := s.db.WithContext(ctx).
		Preload("Facilities").
		Preload("LadiesDays", func(db *gorm.DB) *gorm.DB {
			return db.Order("trust_score DESC")
		}).
		Preload("LadiesDays.SourceUser").
		Preload("LadiesDays.Votes").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Where("visibility = ?", domain.VisibilityPublic).
				Order("created_at DESC").
				Limit(reviewLimit)
		}).
		Preload("Reviews.User").
		Where("id = ?", id).
		First(&sauna).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sauna detail: %w", err)
	}
	return &sauna, nil
}

// ListSaunas retrieves saunas with facilities and ladies days
func (s *pgStore) ListSaunas(ctx context.Context, filter SaunaQueryFilter) ([]*schema.Sauna, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Sauna{})

	if filter.HasLadiesDay {
		query = query.Where("EXISTS (SELECT 1 FROM ladies_days WHERE ladies_days.sauna_id = saunas.id)")
	}
	if len(filter.Facilities) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM facilities WHERE facilities.sauna_id = saunas.id AND facilities.name IN ?)",
			filter.Facilities,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count saunas: %w", err)
	}

	var saunas []*schema.Sauna
	err := query.
		Preload("Facilities").
		Preload("LadiesDays").
		Preload("LadiesDays.SourceUser").
		Order("rating DESC").
		Order("review_count DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&saunas).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list saunas: %w", err)
	}

	return saunas, total, nil
}

// UpdateSaunaRating overwrites the derived rating aggregates of a sauna
func (s *pgStore) UpdateSaunaRating(ctx context.Context, saunaID string, rating float64, reviewCount int) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Sauna{}).
		Where("id = ?", saunaID).
		Updates(map[string]interface{}{
			"rating":       rating,
			"review_count": reviewCount,
			"updated_at":   gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update sauna rating: %w", err)
	}
	return nil
}

// CountSaunaReviews counts public reviews for a sauna
func (s *pgStore) CountSaunaReviews(ctx context.Context, saunaID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Review{}).
		Where("sauna_id = ? AND visibility = ?", saunaID, domain.VisibilityPublic).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

// CountSaunaFavorites counts favorites for a sauna
func (s *pgStore) CountSaunaFavorites(ctx context.Context, saunaID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Favorite{}).
		Where("sauna_id = ?", saunaID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

// CreateLadiesDay persists a new ladies day entry
func (s *pgStore) CreateLadiesDay(ctx context.Context, entry *schema.LadiesDay) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create ladies day: %w", err)
	}
	return nil
}

// GetLadiesDayByID retrieves a bare entry
func (s *pgStore) GetLadiesDayByID(ctx context.Context, id string) (*schema.LadiesDay, error) {
	var entry schema.LadiesDay
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ladies day: %w", err)
	}
	return &entry, nil
}

// GetLadiesDayWithRelations retrieves an entry with its sauna and submitter
func (s *pgStore) GetLadiesDayWithRelations(ctx context.Context, id string) (*schema.LadiesDay, error) {
	var entry schema.LadiesDay
	err := s.db.WithContext(ctx).
		Preload("Sauna").
		Preload("SourceUser").
		Where("id = ?", id).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ladies day with relations: %w", err)
	}
	return &entry, nil
}

// FindDuplicateLadiesDay looks up an entry with the same sauna, temporal key
// and submitting user. The temporal key is matched exactly: a nil day of week
// only matches rows where day_of_week IS NULL, and specific dates compare at
// day granularity (the column is a DATE).
func (s *pgStore) FindDuplicateLadiesDay(ctx context.Context, saunaID string, dayOfWeek *int, specificDate *datatypes.Date, sourceUserID string) (*schema.LadiesDay, error) {
	query := s.db.WithContext(ctx).
		Where("sauna_id = ? AND source_user_id = ?", saunaID, sourceUserID)

	if dayOfWeek != nil {
		query = query.Where("day_of_week = ?", *dayOfWeek)
	} else {
		query = query.Where("day_of_week IS NULL")
	}
	if specificDate != nil {
		query = query.Where("specific_date = ?", *specificDate)
	} else {
		query = query.Where("specific_date IS NULL")
	}

	var entry schema.LadiesDay
	err := query.First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find duplicate ladies day: %w", err)
	}
	return &entry, nil
}

// ListLadiesDays retrieves entries matching the filter
func (s *pgStore) ListLadiesDays(ctx context.Context, filter LadiesDayQueryFilter) ([]*schema.LadiesDay, error) {
	query := s.db.WithContext(ctx).Model(&schema.LadiesDay{})

	if filter.SaunaID != "" {
		query = query.Where("sauna_id = ?", filter.SaunaID)
	}
	if filter.SpecificDate != nil {
		query = query.Where("specific_date = ?", *filter.SpecificDate)
	}
	if filter.DayOfWeek != nil {
		query = query.Where("day_of_week = ?", *filter.DayOfWeek)
	}

	var entries []*schema.LadiesDay
	err := query.
		Preload("Sauna").
		Preload("SourceUser").
		Preload("Votes").
		Order("trust_score DESC").
		Order("support_count DESC").
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ladies days: %w", err)
	}

	return entries, nil
}

// ListTodaysLadiesDays retrieves the union of entries recurring on the given
// weekday and entries dated exactly the given date
func (s *pgStore) ListTodaysLadiesDays(ctx context.Context, dayOfWeek int, date datatypes.Date) ([]*schema.LadiesDay, error) {
	var entries []*schema.LadiesDay
	err := s.db.WithContext(ctx).
		Preload("Sauna").
		Preload("SourceUser").
		Where("day_of_week = ? OR specific_date = ?", dayOfWeek, date).
		Order("trust_score DESC").
		Order("support_count DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list todays ladies days: %w", err)
	}
	return entries, nil
}

// UpdateLadiesDayScore overwrites the derived vote aggregates of an entry
func (s *pgStore) UpdateLadiesDayScore(ctx context.Context, id string, supportCount, oppositionCount int, trustScore float64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.LadiesDay{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"support_count":    supportCount,
			"opposition_count": oppositionCount,
			"trust_score":      trustScore,
			"updated_at":       gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update ladies day score: %w", err)
	}
	return nil
}

// GetVote retrieves the live vote of a user on an entry
func (s *pgStore) GetVote(ctx context.Context, userID, ladiesDayID string) (*schema.Vote, error) {
	var vote schema.Vote
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND ladies_day_id = ?", userID, ladiesDayID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return &vote, nil
}

// CreateVote persists a new vote
func (s *pgStore) CreateVote(ctx context.Context, vote *schema.Vote) error {
	if err := s.db.WithContext(ctx).Create(vote).Error; err != nil {
		return fmt.Errorf("failed to create vote: %w", err)
	}
	return nil
}

// UpdateVoteType flips an existing vote in place
func (s *pgStore) UpdateVoteType(ctx context.Context, voteID string, voteType domain.VoteType) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Vote{}).
		Where("id = ?", voteID).
		Update("vote_type", voteType).Error
	if err != nil {
		return fmt.Errorf("failed to update vote: %w", err)
	}
	return nil
}

// ListVotesByLadiesDay retrieves the full vote ledger for an entry
func (s *pgStore) ListVotesByLadiesDay(ctx context.Context, ladiesDayID string) ([]schema.Vote, error) {
	var votes []schema.Vote
	err := s.db.WithContext(ctx).
		Where("ladies_day_id = ?", ladiesDayID).
		Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return votes, nil
}

// GetFavorite retrieves a user's favorite for a sauna
func (s *pgStore) GetFavorite(ctx context.Context, userID, saunaID string) (*schema.Favorite, error) {
	var favorite schema.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND sauna_id = ?", userID, saunaID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get favorite: %w", err)
	}
	return &favorite, nil
}

// CreateFavorite persists a new favorite
func (s *pgStore) CreateFavorite(ctx context.Context, favorite *schema.Favorite) error {
	if err := s.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// DeleteFavorite removes a favorite
func (s *pgStore) DeleteFavorite(ctx context.Context, favoriteID string) error {
	err := s.db.WithContext(ctx).
		Where("id = ?", favoriteID).
		Delete(&schema.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

// ListFavoritesWithSaunas retrieves a user's favorites newest first, each
// with its sauna and the sauna's ladies days matching today
func (s *pgStore) ListFavoritesWithSaunas(ctx context.Context, userID string, dayOfWeek int, date datatypes.Date) ([]schema.Favorite, error) {
	var favorites []schema.Favorite
	err := s.db.WithContext(ctx).
		Preload("Sauna").
		Preload("Sauna.LadiesDays", func(db *gorm.DB) *gorm.DB {
			return db.Where("day_of_week = ? OR specific_date = ?", dayOfWeek, date)
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// CreateReview persists a new review
func (s *pgStore) CreateReview(ctx context.Context, review *schema.Review) error {
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetReviewByID retrieves a review
func (s *pgStore) GetReviewByID(ctx context.Context, id string) (*schema.Review, error) {
	var review schema.Review
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

// FindReviewByUserAndSauna retrieves a user's review of a sauna
func (s *pgStore) FindReviewByUserAndSauna(ctx context.Context, userID, saunaID string) (*schema.Review, error) {
	var review schema.Review
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND sauna_id = ?", userID, saunaID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	return &review, nil
}

// ListReviews retrieves reviews matching the filter
func (s *pgStore) ListReviews(ctx context.Context, filter ReviewQueryFilter) ([]*schema.Review, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Review{})

	if filter.SaunaID != "" {
		query = query.Where("sauna_id = ?", filter.SaunaID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.PublicOnly {
		query = query.Where("visibility = ?", domain.VisibilityPublic)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviews []*schema.Review
	err := query.
		Preload("User").
		Preload("Sauna").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, total, nil
}

// ListPublicReviewRatings retrieves the ratings of all public reviews of a sauna
func (s *pgStore) ListPublicReviewRatings(ctx context.Context, saunaID string) ([]int, error) {
	var ratings []int
	err := s.db.WithContext(ctx).
		Model(&schema.Review{}).
		Where("sauna_id = ? AND visibility = ?", saunaID, domain.VisibilityPublic).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list review ratings: %w", err)
	}
	return ratings, nil
}

// UpdateReview persists changes to an existing review
func (s *pgStore) UpdateReview(ctx context.Context, review *schema.Review) error {
	if err := s.db.WithContext(ctx).Save(review).Error; err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

// DeleteReview removes a review
func (s *pgStore) DeleteReview(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&schema.Review{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

// Ping verifies database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
