package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"atelier-cms/internal/logger"
)

// RequestLogging emits one structured log line per request with the time
// spent between entry and response.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		fields := logger.Fields{
			"method":      method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if requestID := RequestIDFromContext(c.Request.Context()); requestID != "" {
			fields["request_id"] = requestID
		}
		logger.InfoWithFields("completed request", fields)
	}
}
