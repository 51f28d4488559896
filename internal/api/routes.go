package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"phPortfolio/internal/api/middleware"
	"phPortfolio/internal/auth"
)

// RegisterRoutes wires the portfolio API under /api. Read endpoints are
// public; every write except the contact-form intake requires the admin
// bearer token.
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	authService *auth.AuthService,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
	storageClient ObjectStore,
	clamdAddr string,
	maxUploadBytes int64,
	loginRateLimitPerHour int,
) {
	heroHandler := NewHeroHandler(db)
	aboutHandler := NewAboutHandler(db)
	contactHandler := NewContactHandler(db)
	siteConfigHandler := NewSiteConfigHandler(db)
	skillHandler := NewSkillHandler(db)
	projectHandler := NewProjectHandler(db)
	experienceHandler := NewExperienceHandler(db)
	messageHandler := NewContactMessageHandler(db)
	imageHandler := NewImageHandler(storageClient, logger, clamdAddr, maxUploadBytes)
	authHandler := NewAuthHandler(db, authService, redisClient, logger, loginRateLimitPerHour)
	authMiddleware := middleware.AuthMiddleware(authService, redisClient)

	public := router.Group("/api")
	{
		public.GET("/hero", heroHandler.Show)
		public.GET("/about", aboutHandler.Show)
		public.GET("/contact", contactHandler.Show)
		public.GET("/site-config", siteConfigHandler.Show)

		public.GET("/skills", skillHandler.List)
		public.GET("/projects", projectHandler.List)
		public.GET("/projects/:id", projectHandler.Show)
		public.GET("/experiences", experienceHandler.List)

		public.POST("/contact-message", messageHandler.Store)

		public.POST("/login", authHandler.Login)
	}

	admin := router.Group("/api")
	admin.Use(authMiddleware)
	{
		admin.POST("/logout", authHandler.Logout)

		admin.PUT("/hero", heroHandler.Update)
		admin.PUT("/about", aboutHandler.Update)
		admin.PUT("/contact", contactHandler.Update)
		admin.PUT("/site-config", siteConfigHandler.Update)

		admin.POST("/skills", skillHandler.Store)
		admin.PUT("/skills/:id", skillHandler.Update)
		admin.DELETE("/skills/:id", skillHandler.Destroy)

		admin.POST("/projects", projectHandler.Store)
		admin.PUT("/projects/:id", projectHandler.Update)
		admin.DELETE("/projects/:id", projectHandler.Destroy)

		admin.POST("/experiences", experienceHandler.Store)
		admin.PUT("/experiences/:id", experienceHandler.Update)
		admin.DELETE("/experiences/:id", experienceHandler.Destroy)

		admin.GET("/contact-messages", messageHandler.List)
		admin.PATCH("/contact-messages/:id/read", messageHandler.MarkAsRead)
		admin.DELETE("/contact-messages/:id", messageHandler.Destroy)

		admin.POST("/upload-image", imageHandler.Upload)
		admin.DELETE("/delete-image", imageHandler.Delete)
	}
}
