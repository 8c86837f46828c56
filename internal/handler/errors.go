package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
	"github.com/ekrsw/knowledge-app-sub000/internal/logger"
	"github.com/ekrsw/knowledge-app-sub000/internal/middleware"
)

// respondError maps a service error onto an HTTP status. Anything outside
// the domain sentinels is an internal error and its detail stays out of the
// response body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrArticleNotFound),
		errors.Is(err, domain.ErrRevisionNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPermissionDenied),
		errors.Is(err, domain.ErrSelfApproval):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidStateTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrTargetMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.ErrorContext(c.Request.Context(), "request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// actorID resolves the acting user from the X-User-ID header. Authentication
// happens upstream; the header carries the already-verified identity.
func actorID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-User-ID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header is required"})
		return "", false
	}
	return id, true
}
