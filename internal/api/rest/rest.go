package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ladies-sauna/ls-api/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth endpoints
		v1.POST("/auth/register", handler.Register)
		v1.POST("/auth/login", handler.Login)
		v1.GET("/auth/me", middleware.Auth(authCfg), handler.GetProfile)

		// Sauna endpoints (public read access; detail personalizes for known users)
		v1.GET("/saunas", handler.ListSaunas)
		v1.GET("/saunas/:id", middleware.OptionalAuth(authCfg), handler.GetSauna)
		v1.POST("/saunas", middleware.Auth(authCfg), handler.CreateSauna)
		v1.POST("/saunas/:id/favorite", middleware.Auth(authCfg), handler.ToggleFavorite)

		// Ladies day endpoints (public read access, authenticated writes)
		v1.GET("/ladies-days", handler.ListLadiesDays)
		v1.GET("/ladies-days/today", handler.TodaysLadiesDays)
		v1.POST("/ladies-days", middleware.Auth(authCfg), handler.CreateLadiesDay)
		v1.POST("/ladies-days/:id/vote", middleware.Auth(authCfg), handler.VoteLadiesDay)

		// Review endpoints
		v1.GET("/reviews", handler.ListReviews)
		v1.GET("/reviews/me", middleware.Auth(authCfg), handler.ListMyReviews)
		v1.POST("/reviews", middleware.Auth(authCfg), handler.CreateReview)
		v1.PUT("/reviews/:id", middleware.Auth(authCfg), handler.UpdateReview)
		v1.DELETE("/reviews/:id", middleware.Auth(authCfg), handler.DeleteReview)

		// User endpoints (requires authentication)
		v1.GET("/users/favorites", middleware.Auth(authCfg), handler.ListFavorites)
	}
}
