package executor

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ladies-sauna/ls-api/internal/adapter"
	"github.com/ladies-sauna/ls-api/internal/api/shared/constants"
	"github.com/ladies-sauna/ls-api/internal/api/shared/dto"
	apierrors "github.com/ladies-sauna/ls-api/internal/api/shared/errors"
	"github.com/ladies-sauna/ls-api/internal/auth"
	"github.com/ladies-sauna/ls-api/internal/domain"
	"github.com/ladies-sauna/ls-api/internal/geo"
	"github.com/ladies-sauna/ls-api/internal/store"
	"github.com/ladies-sauna/ls-api/internal/store/schema"
	"github.com/ladies-sauna/ls-api/internal/trust"
)

// ListSaunasParams holds the query parameters for listing saunas
type ListSaunasParams struct {
	Latitude     *float64
	Longitude    *float64
	HasLadiesDay bool
	Facilities   []string
	Page         int
	Limit        int
}

// ListReviewsParams holds the query parameters for listing reviews
type ListReviewsParams struct {
	SaunaID string
	UserID  string
	// PublicOnly restricts results to PUBLIC visibility. It is false only
	// when a user lists their own reviews.
	PublicOnly bool
	Page       int
	Limit      int
}

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateLadiesDay submits a new ladies day entry on behalf of userID
	CreateLadiesDay(ctx context.Context, userID string, req dto.CreateLadiesDayRequest) (*dto.CreateLadiesDayResponse, error)

	// VoteLadiesDay records or flips userID's vote on an entry and
	// recomputes the entry's trust aggregates
	VoteLadiesDay(ctx context.Context, userID string, ladiesDayID string, voteType domain.VoteType) (*dto.VoteResponse, error)

	// ListLadiesDays retrieves entries with optional filters
	ListLadiesDays(ctx context.Context, filter store.LadiesDayQueryFilter) (*dto.LadiesDayListResponse, error)

	// TodaysLadiesDays retrieves entries in effect today
	TodaysLadiesDays(ctx context.Context) (*dto.TodaysLadiesDaysResponse, error)

	// ListSaunas retrieves saunas with optional filters and proximity sorting
	ListSaunas(ctx context.Context, params ListSaunasParams) (*dto.SaunaListResponse, error)

	// GetSauna retrieves a sauna detail. userID may be empty for anonymous callers.
	GetSauna(ctx context.Context, id string, userID string) (*dto.SaunaResponse, error)

	// CreateSauna registers a new sauna with its facilities
	CreateSauna(ctx context.Context, req dto.CreateSaunaRequest) (*dto.CreateSaunaResponse, error)

	// ToggleFavorite adds or removes userID's favorite on a sauna
	ToggleFavorite(ctx context.Context, userID string, saunaID string) (*dto.FavoriteResponse, error)

	// ListFavorites retrieves userID's favorited saunas
	ListFavorites(ctx context.Context, userID string) (*dto.FavoriteListResponse, error)

	// CreateReview posts a review and re-averages the sauna's rating
	CreateReview(ctx context.Context, userID string, req dto.CreateReviewRequest) (*dto.CreateReviewResponse, error)

	// ListReviews retrieves reviews with optional filters
	ListReviews(ctx context.Context, params ListReviewsParams) (*dto.ReviewListResponse, error)

	// UpdateReview edits userID's own review
	UpdateReview(ctx context.Context, userID string, reviewID string, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error)

	// DeleteReview removes userID's own review
	DeleteReview(ctx context.Context, userID string, reviewID string) error

	// Register creates a new account and returns a fresh token
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login authenticates by email and password and returns a fresh token
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// GetProfile retrieves the caller's own profile
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type executor struct {
	store     store.Store
	clock     adapter.Clock
	jwtSecret string
}

func NewExecutor(store store.Store, clock adapter.Clock, jwtSecret string) Executor {
	return &executor{store: store, clock: clock, jwtSecret: jwtSecret}
}

func (e *executor) CreateLadiesDay(ctx context.Context, userID string, req dto.CreateLadiesDayRequest) (*dto.CreateLadiesDayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sauna, err := e.store.GetSaunaByID(ctx, req.SaunaID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get sauna: %v", err))
	}
	if sauna == nil {
		return nil, apierrors.NewNotFoundError("Sauna not found")
	}

	user, err := e.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, apierrors.NewUnauthorizedError("User not found")
	}

	specificDate := req.ParsedSpecificDate()

	// The duplicate check and the insert below are not atomic. Two
	// concurrent submissions of the same slot can both pass the check;
	// voting converges the survivors, so no constraint backs this up.
	duplicate, err := e.store.FindDuplicateLadiesDay(ctx, req.SaunaID, req.DayOfWeek, specificDate, userID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to check for duplicates: %v", err))
	}
	if duplicate != nil {
		return nil, apierrors.NewConflictError("You have already posted this ladies day information", duplicate.ID)
	}

	entry := &schema.LadiesDay{
		ID:           uuid.NewString(),
		SaunaID:      req.SaunaID,
		DayOfWeek:    req.DayOfWeek,
		SpecificDate: specificDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsOfficial:   req.IsOfficial,
		SourceType:   req.SourceType,
		SourceUserID: &user.ID,
		// New entries inherit the submitter's reputation until votes arrive
		TrustScore: user.TrustScore,
	}

	if err := e.store.CreateLadiesDay(ctx, entry); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create ladies day: %v", err))
	}

	if err := e.store.IncrementUserContribution(ctx, userID); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update contribution count: %v", err))
	}

	created, err := e.store.GetLadiesDayWithRelations(ctx, entry.ID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to load created ladies day: %v", err))
	}
	if created == nil {
		return nil, apierrors.NewInternalError("Created ladies day disappeared")
	}

	return &dto.CreateLadiesDayResponse{
		Message:   "Ladies day information added successfully",
		LadiesDay: dto.MapLadiesDayToDTO(created, false),
	}, nil
}

func (e *executor) VoteLadiesDay(ctx context.Context, userID string, ladiesDayID string, voteType domain.VoteType) (*dto.VoteResponse, error) {
	if !domain.IsValidVoteType(voteType) {
		return nil, apierrors.NewValidationError(fmt.Sprintf("vote_type must be %s or %s", domain.VoteTypeSupport, domain.VoteTypeOppose))
	}

	entry, err := e.store.GetLadiesDayByID(ctx, ladiesDayID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get ladies day: %v", err))
	}
	if entry == nil {
		return nil, apierrors.NewNotFoundError("Ladies day entry not found")
	}

	existing, err := e.store.GetVote(ctx, userID, ladiesDayID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get vote: %v", err))
	}

	switch {
	case existing != nil && existing.VoteType == voteType:
		return nil, apierrors.NewConflictError("You have already cast this vote", existing.ID)
	case existing != nil:
		if err := e.store.UpdateVoteType(ctx, existing.ID, voteType); err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update vote: %v", err))
		}
	default:
		vote := &schema.Vote{
			ID:          uuid.NewString(),
			UserID:      userID,
			LadiesDayID: ladiesDayID,
			VoteType:    voteType,
		}
		if err := e.store.CreateVote(ctx, vote); err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create vote: %v", err))
		}
	}

	// Recompute aggregates from the full ledger rather than adjusting
	// counters incrementally, so a flip never leaves them skewed.
	votes, err := e.store.ListVotesByLadiesDay(ctx, ladiesDayID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list votes: %v", err))
	}

	voteTypes := make([]domain.VoteType, len(votes))
	for i, v := range votes {
		voteTypes[i] = v.VoteType
	}

	tally := trust.Recompute(voteTypes, entry.TrustScore)
	if err := e.store.UpdateLadiesDayScore(ctx, ladiesDayID, tally.SupportCount, tally.OppositionCount, tally.TrustScore); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update trust score: %v", err))
	}

	return &dto.VoteResponse{
		Message:         "Vote recorded successfully",
		SupportCount:    tally.SupportCount,
		OppositionCount: tally.OppositionCount,
		TrustScore:      tally.TrustScore,
	}, nil
}

func (e *executor) ListLadiesDays(ctx context.Context, filter store.LadiesDayQueryFilter) (*dto.LadiesDayListResponse, error) {
	entries, err := e.store.ListLadiesDays(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list ladies days: %v", err))
	}

	return &dto.LadiesDayListResponse{
		LadiesDays: dto.MapLadiesDaysToDTO(entries, false),
	}, nil
}

func (e *executor) TodaysLadiesDays(ctx context.Context) (*dto.TodaysLadiesDaysResponse, error) {
	now := e.clock.Now()
	dayOfWeek := int(now.Weekday())
	today := datatypes.Date(domain.DayOfDate(now))

	entries, err := e.store.ListTodaysLadiesDays(ctx, dayOfWeek, today)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list today's ladies days: %v", err))
	}

	return &dto.TodaysLadiesDaysResponse{
		Date:       now.Format("2006-01-02"),
		DayOfWeek:  dayOfWeek,
		LadiesDays: dto.MapLadiesDaysToDTO(entries, true),
	}, nil
}

func (e *executor) ListSaunas(ctx context.Context, params ListSaunasParams) (*dto.SaunaListResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = constants.DEFAULT_SAUNAS_LIMIT
	}
	if limit > constants.MAX_PAGE_SIZE {
		limit = constants.MAX_PAGE_SIZE
	}

	filter := store.SaunaQueryFilter{
		HasLadiesDay: params.HasLadiesDay,
		Facilities:   params.Facilities,
		Limit:        limit,
		Offset:       (page - 1) * limit,
	}

	saunas, total, err := e.store.ListSaunas(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list saunas: %v", err))
	}

	saunaDTOs := make([]dto.SaunaResponse, len(saunas))
	for i, sauna := range saunas {
		saunaDTOs[i] = dto.MapSaunaToDTO(sauna)
	}

	// Proximity sorting happens within the page, not across the full table
	if params.Latitude != nil && params.Longitude != nil {
		for i := range saunaDTOs {
			d := geo.Distance(*params.Latitude, *params.Longitude, saunaDTOs[i].Latitude, saunaDTOs[i].Longitude)
			saunaDTOs[i].Distance = &d
		}
		sort.SliceStable(saunaDTOs, func(i, j int) bool {
			return *saunaDTOs[i].Distance < *saunaDTOs[j].Distance
		})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.SaunaListResponse{
		Saunas: saunaDTOs,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (e *executor) GetSauna(ctx context.Context, id string, userID string) (*dto.SaunaResponse, error) {
	sauna, err := e.store.GetSaunaDetail(ctx, id, constants.SAUNA_DETAIL_REVIEW_LIMIT)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get sauna: %v", err))
	}
	if sauna == nil {
		return nil, apierrors.NewNotFoundError("Sauna not found")
	}

	resp := dto.MapSaunaToDTO(sauna)

	favoriteCount, err := e.store.CountSaunaFavorites(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to count favorites: %v", err))
	}
	resp.FavoriteCount = &favoriteCount

	isFavorited := false
	if userID != "" {
		favorite, err := e.store.GetFavorite(ctx, userID, id)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get favorite: %v", err))
		}
		isFavorited = favorite != nil
	}
	resp.IsFavorited = &isFavorited

	return &resp, nil
}

func (e *executor) CreateSauna(ctx context.Context, req dto.CreateSaunaRequest) (*dto.CreateSaunaResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sauna := &schema.Sauna{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Phone:       req.Phone,
		Website:     req.Website,
		Description: req.Description,
		PriceRange:  req.PriceRange,
	}
	for _, f := range req.Facilities {
		sauna.Facilities = append(sauna.Facilities, schema.Facility{
			ID:          uuid.NewString(),
			SaunaID:     sauna.ID,
			Name:        f.Name,
			Category:    f.Category,
			Temperature: f.Temperature,
			Description: f.Description,
			IsWomenOnly: f.IsWomenOnly,
		})
	}

	if err := e.store.CreateSauna(ctx, sauna); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create sauna: %v", err))
	}

	return &dto.CreateSaunaResponse{
		Message: "Sauna registered successfully",
		Sauna:   dto.MapSaunaToDTO(sauna),
	}, nil
}

func (e *executor) ToggleFavorite(ctx context.Context, userID string, saunaID string) (*dto.FavoriteResponse, error) {
	sauna, err := e.store.GetSaunaByID(ctx, saunaID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get sauna: %v", err))
	}
	if sauna == nil {
		return nil, apierrors.NewNotFoundError("Sauna not found")
	}

	existing, err := e.store.GetFavorite(ctx, userID, saunaID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get favorite: %v", err))
	}

	if existing != nil {
		if err := e.store.DeleteFavorite(ctx, existing.ID); err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete favorite: %v", err))
		}
		return &dto.FavoriteResponse{Message: "Favorite removed", IsFavorited: false}, nil
	}

	favorite := &schema.Favorite{
		ID:      uuid.NewString(),
		UserID:  userID,
		SaunaID: saunaID,
	}
	if err := e.store.CreateFavorite(ctx, favorite); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create favorite: %v", err))
	}

	return &dto.FavoriteResponse{Message: "Favorite added", IsFavorited: true}, nil
}

func (e *executor) ListFavorites(ctx context.Context, userID string) (*dto.FavoriteListResponse, error) {
	now := e.clock.Now()
	dayOfWeek := int(now.Weekday())
	today := datatypes.Date(domain.DayOfDate(now))

	favorites, err := e.store.ListFavoritesWithSaunas(ctx, userID, dayOfWeek, today)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list favorites: %v", err))
	}

	isFavorited := true
	saunaDTOs := make([]dto.SaunaResponse, 0, len(favorites))
	for i := range favorites {
		if favorites[i].Sauna == nil {
			continue
		}
		resp := dto.MapSaunaToDTO(favorites[i].Sauna)
		resp.IsFavorited = &isFavorited
		hasLadiesDay := len(favorites[i].Sauna.LadiesDays) > 0
		resp.HasLadiesDay = &hasLadiesDay
		saunaDTOs = append(saunaDTOs, resp)
	}

	return &dto.FavoriteListResponse{Favorites: saunaDTOs}, nil
}

func (e *executor) CreateReview(ctx context.Context, userID string, req dto.CreateReviewRequest) (*dto.CreateReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sauna, err := e.store.GetSaunaByID(ctx, req.SaunaID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get sauna: %v", err))
	}
	if sauna == nil {
		return nil, apierrors.NewNotFoundError("Sauna not found")
	}

	user, err := e.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, apierrors.NewUnauthorizedError("User not found")
	}

	existing, err := e.store.FindReviewByUserAndSauna(ctx, userID, req.SaunaID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to check for existing review: %v", err))
	}
	if existing != nil {
		return nil, apierrors.NewConflictError("You have already reviewed this sauna", existing.ID)
	}

	review := &schema.Review{
		ID:         uuid.NewString(),
		SaunaID:    req.SaunaID,
		UserID:     userID,
		Rating:     req.Rating,
		Title:      req.Title,
		Content:    req.Content,
		VisitDate:  req.ParsedVisitDate(),
		Visibility: req.NormalizedVisibility(),
	}

	if err := e.store.CreateReview(ctx, review); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create review: %v", err))
	}

	if err := e.refreshSaunaRating(ctx, req.SaunaID); err != nil {
		return nil, err
	}

	if err := e.store.IncrementUserContribution(ctx, userID); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update contribution count: %v", err))
	}

	review.User = user
	review.Sauna = sauna

	return &dto.CreateReviewResponse{
		Message: "Review posted successfully",
		Review:  dto.MapReviewToDTO(review),
	}, nil
}

func (e *executor) ListReviews(ctx context.Context, params ListReviewsParams) (*dto.ReviewListResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = constants.DEFAULT_REVIEWS_LIMIT
	}
	if limit > constants.MAX_PAGE_SIZE {
		limit = constants.MAX_PAGE_SIZE
	}

	filter := store.ReviewQueryFilter{
		SaunaID:    params.SaunaID,
		UserID:     params.UserID,
		PublicOnly: params.PublicOnly,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}

	reviews, total, err := e.store.ListReviews(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list reviews: %v", err))
	}

	reviewDTOs := make([]dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewDTOs[i] = dto.MapReviewToDTO(review)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.ReviewListResponse{
		Reviews: reviewDTOs,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (e *executor) UpdateReview(ctx context.Context, userID string, reviewID string, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review, err := e.store.GetReviewByID(ctx, reviewID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get review: %v", err))
	}
	if review == nil {
		return nil, apierrors.NewNotFoundError("Review not found")
	}
	if review.UserID != userID {
		return nil, apierrors.NewForbiddenError("You can only edit your own reviews")
	}

	ratingChanged := false
	if req.Rating != nil && *req.Rating != review.Rating {
		review.Rating = *req.Rating
		ratingChanged = true
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Content != nil {
		review.Content = *req.Content
	}
	if req.VisitDate != nil {
		// Validate has already checked the format
		visitDate, _ := parseDate(*req.VisitDate)
		review.VisitDate = visitDate
	}
	if req.Visibility != nil {
		if review.Visibility != *req.Visibility {
			ratingChanged = true
		}
		review.Visibility = *req.Visibility
	}

	if err := e.store.UpdateReview(ctx, review); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update review: %v", err))
	}

	if ratingChanged {
		if err := e.refreshSaunaRating(ctx, review.SaunaID); err != nil {
			return nil, err
		}
	}

	updated, err := e.store.GetReviewByID(ctx, reviewID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to load updated review: %v", err))
	}
	if updated == nil {
		return nil, apierrors.NewInternalError("Updated review disappeared")
	}

	resp := dto.MapReviewToDTO(updated)
	return &resp, nil
}

func (e *executor) DeleteReview(ctx context.Context, userID string, reviewID string) error {
	review, err := e.store.GetReviewByID(ctx, reviewID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get review: %v", err))
	}
	if review == nil {
		return apierrors.NewNotFoundError("Review not found")
	}
	if review.UserID != userID {
		return apierrors.NewForbiddenError("You can only delete your own reviews")
	}

	if err := e.store.DeleteReview(ctx, reviewID); err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete review: %v", err))
	}

	return e.refreshSaunaRating(ctx, review.SaunaID)
}

func (e *executor) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	byEmail, err := e.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to check email: %v", err))
	}
	if byEmail != nil {
		return nil, apierrors.NewConflictError("Email already registered", "")
	}

	byUsername, err := e.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to check username: %v", err))
	}
	if byUsername != nil {
		return nil, apierrors.NewConflictError("Username already taken", "")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to hash password: %v", err))
	}

	user := &schema.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		TrustScore:   domain.DefaultUserTrustScore,
	}

	if err := e.store.CreateUser(ctx, user); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create user: %v", err))
	}

	token, err := auth.IssueToken(e.jwtSecret, user.ID, e.clock.Now())
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to issue token: %v", err))
	}

	return &dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    dto.MapUserToDTO(user),
	}, nil
}

func (e *executor) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := e.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apierrors.NewUnauthorizedError("Invalid email or password")
	}

	token, err := auth.IssueToken(e.jwtSecret, user.ID, e.clock.Now())
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to issue token: %v", err))
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.MapUserToDTO(user),
	}, nil
}

func (e *executor) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := e.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, apierrors.NewNotFoundError("User not found")
	}

	resp := dto.MapUserToDTO(user)
	return &resp, nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// refreshSaunaRating re-averages a sauna's rating over its public reviews
func (e *executor) refreshSaunaRating(ctx context.Context, saunaID string) error {
	ratings, err := e.store.ListPublicReviewRatings(ctx, saunaID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to list review ratings: %v", err))
	}

	var average float64
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		average = float64(sum) / float64(len(ratings))
	}

	if err := e.store.UpdateSaunaRating(ctx, saunaID, average, len(ratings)); err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to update sauna rating: %v", err))
	}

	return nil
}
