package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-Id"

type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// RequestTrace guarantees every inbound request carries a request id,
// stored in the context and echoed on the response header. Clients may
// supply their own id for end-to-end correlation.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), ctxKeyRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()
	}
}

// RequestIDFromContext returns the request id set by RequestTrace.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}
