package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	"github.com/SscSPs/relief_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors onto HTTP responses. Field validation messages are
// echoed; store and internal failures are logged and replaced with fallback.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if fields, ok := apperrors.FieldErrors(err); ok {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "The requested record was not found"})
	case errors.Is(err, apperrors.ErrInventoryAlreadyConsumed):
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot void: stock from this entry has already been used or transferred"})
	case errors.Is(err, apperrors.ErrAlreadyVoided):
		c.JSON(http.StatusConflict, gin.H{"error": "This entry is already voided"})
	case errors.Is(err, apperrors.ErrAlreadyActive):
		c.JSON(http.StatusConflict, gin.H{"error": "This entry is already active"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "An entry with this reference already exists"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "The request conflicts with another change, please try again"})
	case errors.Is(err, apperrors.ErrGuardUnavailable):
		logger.Error("Consumption check unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not confirm whether stock from this entry was used, please try again"})
	case errors.Is(err, apperrors.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
	case errors.Is(err, apperrors.ErrNotProvisioned):
		logger.Error("Backing store not provisioned", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "This feature is not available yet"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback + ", please try again"})
	}
}

// requireActor reads the authenticated actor or writes a 401.
func requireActor(c *gin.Context) (string, bool) {
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return actorID, true
}
