package middleware

import (
	"net/http"

	"mediconnect/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route to the given roles. It must run after
// JWTAuthMiddleware, which attaches the caller's role to the context. The
// switch over the closed role set is exhaustive; an unrecognised value can
// only mean a bug upstream and is rejected.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := callerRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		switch role {
		case models.RoleUser, models.RoleDoctor, models.RoleAdmin:
			for _, a := range allowed {
				if role == a {
					c.Next()
					return
				}
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		}
	}
}
