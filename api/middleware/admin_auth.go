package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-cms/auth"
	"atelier-cms/internal/logger"
	"atelier-cms/services"
)

// AdminAuth verifies the request's JWT and requires the admin role.
func AdminAuth(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		username, role, err := authSvc.ParseAccessToken(token)
		if err != nil {
			logger.Log.Warnf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if role != auth.RoleAdmin {
			logger.Log.Warnf("access denied: user %s has role %s, want admin", username, role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}

		c.Set("username", username)
		c.Set("role", role)

		c.Next()
	}
}
