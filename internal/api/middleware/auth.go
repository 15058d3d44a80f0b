package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/ladies-sauna/ls-api/internal/api/shared/errors"
	"github.com/ladies-sauna/ls-api/internal/auth"
	"github.com/ladies-sauna/ls-api/internal/logger"
)

const (
	// USER_ID_KEY is the gin context key holding the authenticated user's id
	USER_ID_KEY = "user_id"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success bool
	UserID  string
	Error   error
}

// Authenticate validates the Authorization header and returns the result.
// Reusable outside middleware, e.g. in tests.
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	result := AuthResult{Success: false}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	claims, err := auth.ValidateToken(cfg.JWTSecret, parts[1])
	if err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	result.UserID = claims.Subject
	return result
}

// Auth returns a gin middleware that requires a valid Bearer token
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := Authenticate(c.GetHeader("Authorization"), cfg)

		if !result.Success {
			logger.Warn("Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		c.Set(USER_ID_KEY, result.UserID)
		c.Next()
	}
}

// OptionalAuth returns a gin middleware that extracts the user from a Bearer
// token when one is present but lets anonymous requests through. Endpoints
// behind it personalize responses for known users.
func OptionalAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			result := Authenticate(authHeader, cfg)
			if result.Success {
				c.Set(USER_ID_KEY, result.UserID)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id, or "" for anonymous requests
func UserID(c *gin.Context) string {
	return c.GetString(USER_ID_KEY)
}
