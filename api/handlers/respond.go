package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-cms/internal/logger"
	"atelier-cms/schema"
	"atelier-cms/services"
	"atelier-cms/store"
)

// writeError maps the error taxonomy to status codes: validation → 400,
// missing → 404, duplicate/stale-version → 409, bad credentials → 401.
// Anything else becomes a generic 500 with the detail kept in the log.
func writeError(c *gin.Context, err error) {
	var verrs schema.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate value for unique field"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "version conflict, reload and retry"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
	default:
		logger.ErrorWithFields("request failed", logger.Fields{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// writeBindError reports a malformed request body.
func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
