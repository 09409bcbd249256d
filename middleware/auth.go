package middleware

import (
	"net/http"
	"strings"

	userRepo "mediconnect/database/repository/user"
	"mediconnect/models"
	"mediconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token, confirms its hash against the
// Redis auth cache (falling back to a user lookup on cache miss) and attaches
// the caller's userID and role to the request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, roleClaim, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		role, err := models.ParseRole(roleClaim)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID
		authCache := utils.GetAuthCacheClient()

		cachedHash, err := authCache.Get(c.Request.Context(), cacheKey).Result()
		switch {
		case err == nil:
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
			// Refresh the TTL on use.
			_ = authCache.Expire(c.Request.Context(), cacheKey, utils.AuthCacheTTL).Err()
		case err == redis.Nil:
			// Cache miss: confirm the account still exists, then repopulate.
			usr, dbErr := users.GetByID(c.Request.Context(), userID)
			if dbErr != nil || usr == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
				return
			}
			if usr.Role != role {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			_ = authCache.Set(c.Request.Context(), cacheKey, computedHash, utils.AuthCacheTTL).Err()
		default:
			// Cache unreachable: fall back to the account lookup alone.
			utils.GetLogger().Warn("auth cache unavailable, falling back to DB lookup", zap.Error(err))
			usr, dbErr := users.GetByID(c.Request.Context(), userID)
			if dbErr != nil || usr == nil || usr.Role != role {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
				return
			}
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// callerRole reads the role the auth middleware attached to the context.
func callerRole(c *gin.Context) (models.Role, bool) {
	v, ok := c.Get("role")
	if !ok {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}
