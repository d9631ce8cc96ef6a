package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-journal/internal/api/shared/errors"
	"github.com/feral-file/ff-journal/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(message))
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message, details...))
}

// respondError responds with the status matching an APIError code.
// Sponsorship failures are all client errors.
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		respondInternalError(c, err, message)
		return
	}

	switch apiErr.Code {
	case apierrors.ErrCodeNotFound:
		c.JSON(http.StatusNotFound, apiErr)
	case apierrors.ErrCodeUnauthorized:
		c.JSON(http.StatusUnauthorized, apiErr)
	case apierrors.ErrCodeForbidden:
		c.JSON(http.StatusForbidden, apiErr)
	case apierrors.ErrCodeInternalError, apierrors.ErrCodeDatabaseError, apierrors.ErrCodeServiceError:
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, &apierrors.APIError{Code: apiErr.Code, Message: message})
	default:
		c.JSON(http.StatusBadRequest, apiErr)
	}
}
