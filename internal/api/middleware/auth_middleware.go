package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"phPortfolio/internal/auth"
)

// AccessTokenBlacklistKeyPrefix namespaces revoked access-token jtis in Redis.
const AccessTokenBlacklistKeyPrefix = "auth:access:blacklist:"

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
}

// AuthMiddleware validates the bearer token, rejects revoked tokens, and
// stores the admin ID and jti on the context.
func AuthMiddleware(authService *auth.AuthService, redisClient redis.UniversalClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c)
			return
		}

		rawToken := parts[1]
		if strings.TrimSpace(rawToken) == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := authService.ValidateToken(rawToken)
		if err != nil || claims.TokenType != "access" || claims.ID == "" {
			abortUnauthorized(c)
			return
		}

		if redisClient != nil {
			key := AccessTokenBlacklistKeyPrefix + claims.ID
			if err := redisClient.Get(c.Request.Context(), key).Err(); err == nil {
				abortUnauthorized(c)
				return
			} else if !errors.Is(err, redis.Nil) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
				return
			}
		}

		c.Set("adminID", claims.UserID)
		c.Set("tokenJTI", claims.ID)
		c.Set("tokenClaims", claims)
		c.Next()
	}
}
