// File: middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	mentorRepo "mentorlink/database/repository/mentor"
	"mentorlink/models"
	"mentorlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// MentorAuthMiddleware verifies the bearer token and requires the caller to be a mentor.
// Verified tokens are remembered in the auth cache for an hour; when the cache is nil
// or unreachable every request is checked against the user store.
func MentorAuthMiddleware(mentors mentorRepo.MentorRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, no token", nil)
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, no token", nil)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, token failed", err)
			return
		}

		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)

		if authCache != nil {
			cachedID, err := authCache.Get(ctx, cacheKey).Result()
			switch {
			case err == nil && cachedID == userID:
				c.Set(utils.CtxMentorID, userID)
				c.Next()
				return
			case err != nil && !errors.Is(err, redis.Nil):
				logger.Warn("Auth cache lookup failed, falling back to store", zap.Error(err))
			}
		}

		user, err := mentors.GetUser(ctx, userID)
		if errors.Is(err, mentorRepo.ErrUserNotFound) {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, user not found", nil)
			return
		}
		if err != nil {
			logger.Error("Auth user lookup failed", zap.String("userID", userID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Authentication error", err)
			return
		}
		if user.Role != models.RoleMentor {
			utils.JSONError(c, http.StatusForbidden, "Access restricted to mentors", nil)
			return
		}

		if authCache != nil {
			if err := authCache.Set(ctx, cacheKey, userID, utils.AuthCacheTTL).Err(); err != nil {
				logger.Warn("Auth cache write failed", zap.Error(err))
			}
		}

		c.Set(utils.CtxMentorID, userID)
		c.Next()
	}
}
