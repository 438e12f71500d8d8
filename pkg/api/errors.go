package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptlens/promptlens/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": "job is not in a pending state"})
	case errors.Is(err, services.ErrTooManyPending):
		c.JSON(http.StatusConflict, gin.H{"error": "too many jobs already queued for this scope"})
	case errors.Is(err, services.ErrAlreadyInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "a job for this scope is already in progress"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
