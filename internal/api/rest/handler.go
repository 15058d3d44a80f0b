package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ladies-sauna/ls-api/internal/api/middleware"
	"github.com/ladies-sauna/ls-api/internal/api/shared/dto"
	"github.com/ladies-sauna/ls-api/internal/api/shared/executor"
	"github.com/ladies-sauna/ls-api/internal/store"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Register creates a new account
	// POST /api/v1/auth/register
	Register(c *gin.Context)

	// Login authenticates by email and password
	// POST /api/v1/auth/login
	Login(c *gin.Context)

	// GetProfile retrieves the caller's own profile (requires authentication)
	// GET /api/v1/auth/me
	GetProfile(c *gin.Context)

	// ListSaunas retrieves saunas with optional filters
	// GET /api/v1/saunas?lat=<lat>&lng=<lng>&has_ladies_day=<bool>&facility=<name>&page=<page>&limit=<limit>
	ListSaunas(c *gin.Context)

	// GetSauna retrieves a sauna detail
	// GET /api/v1/saunas/:id
	GetSauna(c *gin.Context)

	// CreateSauna registers a new sauna (requires authentication)
	// POST /api/v1/saunas
	CreateSauna(c *gin.Context)

	// ToggleFavorite adds or removes a favorite (requires authentication)
	// POST /api/v1/saunas/:id/favorite
	ToggleFavorite(c *gin.Context)

	// ListFavorites retrieves the caller's favorited saunas (requires authentication)
	// GET /api/v1/users/favorites
	ListFavorites(c *gin.Context)

	// CreateLadiesDay submits a ladies day entry (requires authentication)
	// POST /api/v1/ladies-days
	CreateLadiesDay(c *gin.Context)

	// VoteLadiesDay votes on a ladies day entry (requires authentication)
	// POST /api/v1/ladies-days/:id/vote
	VoteLadiesDay(c *gin.Context)

	// ListLadiesDays retrieves ladies day entries with optional filters
	// GET /api/v1/ladies-days?sauna_id=<id>&date=<date>&day_of_week=<dow>
	ListLadiesDays(c *gin.Context)

	// TodaysLadiesDays retrieves entries in effect today
	// GET /api/v1/ladies-days/today
	TodaysLadiesDays(c *gin.Context)

	// CreateReview posts a review (requires authentication)
	// POST /api/v1/reviews
	CreateReview(c *gin.Context)

	// ListReviews retrieves reviews with optional filters; public only unless
	// filtering by author
	// GET /api/v1/reviews?sauna_id=<id>&user_id=<id>&page=<page>&limit=<limit>
	ListReviews(c *gin.Context)

	// ListMyReviews retrieves the caller's own reviews (requires authentication)
	// GET /api/v1/reviews/me
	ListMyReviews(c *gin.Context)

	// UpdateReview edits the caller's own review (requires authentication)
	// PUT /api/v1/reviews/:id
	UpdateReview(c *gin.Context)

	// DeleteReview removes the caller's own review (requires authentication)
	// DELETE /api/v1/reviews/:id
	DeleteReview(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// Register creates a new account
func (h *handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login authenticates by email and password
func (h *handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetProfile retrieves the caller's own profile
func (h *handler) GetProfile(c *gin.Context) {
	response, err := h.executor.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListSaunas retrieves saunas with optional filters
func (h *handler) ListSaunas(c *gin.Context) {
	queryParams, err := ParseListSaunasQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListSaunas(c.Request.Context(), executor.ListSaunasParams{
		Latitude:     queryParams.Latitude,
		Longitude:    queryParams.Longitude,
		HasLadiesDay: queryParams.HasLadiesDay,
		Facilities:   queryParams.Facilities,
		Page:         queryParams.Page,
		Limit:        queryParams.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSauna retrieves a sauna detail
func (h *handler) GetSauna(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Sauna ID is required")
		return
	}

	response, err := h.executor.GetSauna(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateSauna registers a new sauna
func (h *handler) CreateSauna(c *gin.Context) {
	var req dto.CreateSaunaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.CreateSauna(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ToggleFavorite adds or removes a favorite
func (h *handler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Sauna ID is required")
		return
	}

	response, err := h.executor.ToggleFavorite(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListFavorites retrieves the caller's favorited saunas
func (h *handler) ListFavorites(c *gin.Context) {
	response, err := h.executor.ListFavorites(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateLadiesDay submits a ladies day entry
func (h *handler) CreateLadiesDay(c *gin.Context) {
	var req dto.CreateLadiesDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.CreateLadiesDay(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// VoteLadiesDay votes on a ladies day entry
func (h *handler) VoteLadiesDay(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Ladies day ID is required")
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.VoteLadiesDay(c.Request.Context(), middleware.UserID(c), id, req.VoteType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListLadiesDays retrieves ladies day entries with optional filters
func (h *handler) ListLadiesDays(c *gin.Context) {
	queryParams, err := ParseListLadiesDaysQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListLadiesDays(c.Request.Context(), store.LadiesDayQueryFilter{
		SaunaID:      queryParams.SaunaID,
		SpecificDate: queryParams.ParsedDate(),
		DayOfWeek:    queryParams.DayOfWeek,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// TodaysLadiesDays retrieves entries in effect today
func (h *handler) TodaysLadiesDays(c *gin.Context) {
	response, err := h.executor.TodaysLadiesDays(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateReview posts a review
func (h *handler) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.CreateReview(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListReviews retrieves reviews with optional filters. A user filter widens
// the listing to that author's reviews across all visibilities.
func (h *handler) ListReviews(c *gin.Context) {
	queryParams, err := ParseListReviewsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListReviews(c.Request.Context(), executor.ListReviewsParams{
		SaunaID:    queryParams.SaunaID,
		UserID:     queryParams.UserID,
		PublicOnly: queryParams.UserID == "",
		Page:       queryParams.Page,
		Limit:      queryParams.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListMyReviews retrieves the caller's own reviews, private ones included
func (h *handler) ListMyReviews(c *gin.Context) {
	queryParams, err := ParseListReviewsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListReviews(c.Request.Context(), executor.ListReviewsParams{
		SaunaID:    queryParams.SaunaID,
		UserID:     middleware.UserID(c),
		PublicOnly: false,
		Page:       queryParams.Page,
		Limit:      queryParams.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateReview edits the caller's own review
func (h *handler) UpdateReview(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Review ID is required")
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.UpdateReview(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteReview removes the caller's own review
func (h *handler) DeleteReview(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Review ID is required")
		return
	}

	if err := h.executor.DeleteReview(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "ls-api",
	})
}
