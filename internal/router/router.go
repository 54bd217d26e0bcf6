package router

import (
	"net/http"
	"time"

	"freeco/config"
	"freeco/internal/cache"
	"freeco/internal/handler"
	"freeco/internal/middleware"
	"freeco/internal/repository"
	"freeco/internal/service"
	"freeco/pkg/mailer"
	"freeco/pkg/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers onto a gin engine.
func Setup(cfg *config.Config, db *gorm.DB, redisCache *cache.RedisCache, mail *mailer.Mailer, store *storage.LocalStore) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(300, time.Minute)))

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	interestRepo := repository.NewInterestRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	dashRepo := repository.NewDashboardRepository(db)

	notifSvc := service.NewNotificationService(notifRepo, userRepo, mail)
	authSvc := service.NewAuthService(cfg, userRepo, mail)
	listingSvc := service.NewListingService(listingRepo, notifSvc)
	interestSvc := service.NewInterestService(interestRepo, listingRepo, notifSvc)
	modSvc := service.NewModerationService(userRepo, listingRepo, interestRepo, notifSvc)
	dashSvc := service.NewDashboardService(dashRepo, userRepo, listingRepo, interestRepo, redisCache, cfg.Redis.DashboardTTL)

	authHandler := handler.NewAuthHandler(cfg, authSvc, userRepo)
	listingHandler := handler.NewListingHandler(listingSvc)
	interestHandler := handler.NewInterestHandler(interestSvc)
	notifHandler := handler.NewNotificationHandler(notifRepo)
	modHandler := handler.NewModHandler(modSvc)
	adminHandler := handler.NewAdminHandler(dashSvc, userRepo, listingRepo)
	uploadHandler := handler.NewUploadHandler(store)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "service": "freeco", "status": "ok"})
	})

	if store != nil {
		r.Static(cfg.Uploads.BaseURL, store.Dir())
	}

	api := r.Group("/api")
	authed := middleware.AuthRequired(&cfg.JWT)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/verify-otp", authHandler.VerifyOTP)
		auth.POST("/login", authHandler.Login)
		auth.GET("/profile", authed, authHandler.GetProfile)
		auth.PUT("/profile", authed, authHandler.UpdateProfile)
	}

	listings := api.Group("/listings")
	{
		listings.GET("/my-listings", authed, listingHandler.Mine)
		listings.GET("/search", listingHandler.Search)
		listings.POST("/:type", authed, listingHandler.Create)
		listings.GET("/:type", listingHandler.List)
		listings.GET("/:type/:id", listingHandler.Get)
		listings.PUT("/:type/:id", authed, listingHandler.Update)
		listings.DELETE("/:type/:id", authed, listingHandler.Delete)
	}

	interests := api.Group("/interests", authed)
	{
		interests.POST("", interestHandler.Create)
		interests.GET("/check", interestHandler.CheckExisting)
		interests.GET("/sent", interestHandler.ListSent)
		interests.GET("/received", interestHandler.ListReceived)
		interests.PUT("/:id/respond", interestHandler.Respond)
	}

	notifications := api.Group("/notifications", authed)
	{
		notifications.GET("", notifHandler.List)
		notifications.GET("/count", notifHandler.UnreadCount)
		notifications.PUT("/mark-read", notifHandler.MarkRead)
		notifications.DELETE("/cleanup", notifHandler.Cleanup)
	}

	api.POST("/uploads", authed, uploadHandler.Upload)

	mod := api.Group("/mod", authed, middleware.ModeratorRequired())
	{
		mod.GET("/profiles", modHandler.ProfileQueue)
		mod.POST("/profiles/approve-reject", modHandler.ReviewProfile)
		mod.POST("/profiles/bulk-approve-reject", modHandler.BulkReviewProfiles)
		mod.GET("/interests", modHandler.InterestQueue)
		mod.POST("/interests/approve-reject", modHandler.ReviewInterest)
		mod.GET("/listings", modHandler.ListingQueue)
		mod.POST("/listings/approve-reject", modHandler.ReviewListing)
		mod.POST("/listings/bulk-approve-reject", modHandler.BulkReviewListings)
		mod.GET("/listings/all-ids", modHandler.AllListingIDs)
	}

	admin := api.Group("/admin", authed, middleware.AdminRequired())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/users/bulk", adminHandler.BulkUserAction)
		admin.POST("/listings/bulk", adminHandler.BulkListingAction)
		admin.GET("/system-config", adminHandler.GetSystemConfig)
		admin.PUT("/system-config", adminHandler.UpdateSystemConfig)
	}

	return r
}
