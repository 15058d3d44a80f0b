package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/ladies-sauna/ls-api/internal/api/shared/errors"
	"github.com/ladies-sauna/ls-api/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// statusForCode maps error codes to HTTP status codes
func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case apierrors.ErrCodeConflict:
		return http.StatusConflict
	case apierrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apierrors.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError sends a standardized error response. Server-side errors are
// logged and their details withheld from the client.
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError("Internal server error")
	}

	status := statusForCode(apiErr.Code)
	if status >= http.StatusInternalServerError {
		logger.Error(err,
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		apiErr = &apierrors.APIError{Code: apiErr.Code, Message: apiErr.Message}
	}

	c.JSON(status, errorResponse{Error: apiErr})
}

// respondValidationError sends a 422 with a validation failure
func respondValidationError(c *gin.Context, details string) {
	respondError(c, apierrors.NewValidationError(details))
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondError(c, apierrors.NewBadRequestError(message, details...))
}
