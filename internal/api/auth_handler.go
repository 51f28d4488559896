package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"phPortfolio/internal/api/middleware"
	"phPortfolio/internal/auth"
	"phPortfolio/internal/database"
)

// AuthHandler handles admin login and logout. There is no registration
// endpoint; accounts are created with cmd/admin.
type AuthHandler struct {
	db                    *gorm.DB
	authService           *auth.AuthService
	redis                 redis.UniversalClient
	logger                *slog.Logger
	loginRateLimitPerHour int
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, authService *auth.AuthService, redisClient redis.UniversalClient, logger *slog.Logger, loginRateLimitPerHour int) *AuthHandler {
	return &AuthHandler{
		db:                    db,
		authService:           authService,
		redis:                 redisClient,
		logger:                logger,
		loginRateLimitPerHour: loginRateLimitPerHour,
	}
}

// Fields are raw so a wrong-typed value is treated the same as a bad
// credential rather than leaking a bind error.
type loginRequest struct {
	Username json.RawMessage `json:"username"`
	Password json.RawMessage `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login checks the credentials and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	ip := c.ClientIP()
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	var username, password string
	if req.Username == nil || json.Unmarshal(req.Username, &username) != nil ||
		req.Password == nil || json.Unmarshal(req.Password, &password) != nil {
		Unauthorized(c, "Invalid credentials")
		return
	}
	if strings.TrimSpace(username) == "" || password == "" {
		Unauthorized(c, "Invalid credentials")
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c).With(
		slog.String("username", username),
	)

	// Rate limit per IP+username per UTC hour.
	if h.redis != nil && h.loginRateLimitPerHour > 0 {
		rateKey := "rate:login:" + ip + ":" + strings.ToLower(username) + ":" + time.Now().UTC().Format("2006010215")
		count, err := incrWithTTL(ctx, h.redis, rateKey, time.Hour)
		if err != nil {
			count = 0
		}
		if count > int64(h.loginRateLimitPerHour) {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many login attempts"})
			return
		}
	}

	var admin database.AdminUser
	if err := h.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info("login failed: unknown username")
			Unauthorized(c, "Invalid credentials")
			return
		}
		logger.Error("login lookup failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	if !auth.CheckPasswordHash(password, admin.PasswordHash) {
		logger.Info("login failed: password mismatch", slog.Uint64("admin_id", uint64(admin.ID)))
		Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateAccessToken(admin.ID)
	if err != nil {
		logger.Error("generate access token failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	logger.Info("login succeeded", slog.Uint64("admin_id", uint64(admin.ID)))
	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.authService.AccessTokenTTL().Seconds()),
	})
}

// Logout blacklists the presented access token's jti until it would have
// expired anyway.
func (h *AuthHandler) Logout(c *gin.Context) {
	value, exists := c.Get("tokenClaims")
	claims, ok := value.(*auth.TokenClaims)
	if !exists || !ok || claims.ID == "" {
		Unauthorized(c, "unauthorized")
		return
	}

	if h.redis != nil {
		ttl := h.authService.AccessTokenTTL()
		if claims.ExpiresAt != nil {
			ttl = time.Until(claims.ExpiresAt.Time)
		}
		if ttl <= 0 {
			ttl = time.Second
		}
		key := middleware.AccessTokenBlacklistKeyPrefix + claims.ID
		if err := h.redis.Set(c.Request.Context(), key, "revoked", ttl).Err(); err != nil {
			h.loggerFromContext(c).Error("logout revoke failed", slog.Any("error", err))
			Internal(c, "internal error")
			return
		}
	}

	if adminID, ok := adminIDFromContext(c); ok {
		h.loggerFromContext(c).Info("admin logged out", slog.Uint64("admin_id", uint64(adminID)))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// incrWithTTL increments a counter and sets the expiry on first use.
func incrWithTTL(ctx context.Context, client redis.UniversalClient, key string, ttl time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = client.Expire(ctx, key, ttl).Err()
	}
	return count, nil
}

func (h *AuthHandler) loggerFromContext(c *gin.Context) *slog.Logger {
	if logger := middleware.LoggerFromContext(c); logger != nil {
		return logger
	}
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}
