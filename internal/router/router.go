// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autovista/dealership-backend/internal/config"
	"github.com/autovista/dealership-backend/internal/handlers"
	"github.com/autovista/dealership-backend/internal/middleware"
	"github.com/autovista/dealership-backend/internal/services"
	"github.com/autovista/dealership-backend/internal/utils"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Services
	authService := services.NewAuthService(db, cfg)
	carService := services.NewCarService(db)
	motorcycleService := services.NewMotorcycleService(db)
	featuredService := services.NewFeaturedService(db)
	discountService := services.NewDiscountService(db)
	searchService := services.NewSearchService(db)
	notificationService := services.NewNotificationService(&cfg.Email)
	contactService := services.NewContactService(db, notificationService)
	subscriberService := services.NewSubscriberService(db, notificationService)
	storageService := services.NewStorageService(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	carHandler := handlers.NewCarHandler(carService, cfg)
	motorcycleHandler := handlers.NewMotorcycleHandler(motorcycleService, cfg)
	featuredHandler := handlers.NewFeaturedHandler(featuredService, cfg)
	discountHandler := handlers.NewDiscountHandler(discountService, cfg)
	searchHandler := handlers.NewSearchHandler(searchService)
	contactHandler := handlers.NewContactHandler(contactService)
	subscriberHandler := handlers.NewSubscriberHandler(subscriberService)
	uploadHandler := handlers.NewUploadHandler(storageService, cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Locally stored uploads are served directly in development; production
	// puts a CDN or S3 in front instead.
	if cfg.Environment != "production" {
		r.Static("/media", cfg.Media.Root)
	}

	api := r.Group("/api")
	{
		// Authentication
		auth := api.Group("/")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/token", authHandler.Token)
			auth.POST("/token/refresh", authHandler.TokenRefresh)
		}

		// Public surface; OptionalAuth attributes audit rows to a staff
		// account when a token is supplied.
		public := api.Group("/")
		public.Use(middleware.OptionalAuth())
		{
			public.GET("/cars", carHandler.List)
			public.GET("/cars/:id", carHandler.Get)
			public.GET("/motorcycles", motorcycleHandler.List)
			public.GET("/motorcycles/:id", motorcycleHandler.Get)
			public.GET("/search", searchHandler.Search)

			public.POST("/contact-messages", contactHandler.Create)
			public.POST("/subscribers", subscriberHandler.Subscribe)
		}

		// Staff
		protected := api.Group("/")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/users/me", userHandler.Me)
			protected.GET("/users", userHandler.List)
			protected.GET("/users/:id", userHandler.Get)

			protected.POST("/cars", carHandler.Create)
			protected.PUT("/cars/:id", carHandler.Update)
			protected.PATCH("/cars/:id", carHandler.Update)
			protected.DELETE("/cars/:id", carHandler.Delete)

			protected.POST("/motorcycles", motorcycleHandler.Create)
			protected.PUT("/motorcycles/:id", motorcycleHandler.Update)
			protected.PATCH("/motorcycles/:id", motorcycleHandler.Update)
			protected.DELETE("/motorcycles/:id", motorcycleHandler.Delete)

			protected.GET("/featured", featuredHandler.List)
			protected.POST("/featured", featuredHandler.Create)
			protected.GET("/featured/:id", featuredHandler.Get)
			protected.PUT("/featured/:id", featuredHandler.Update)
			protected.DELETE("/featured/:id", featuredHandler.Delete)
			protected.GET("/available-cars", featuredHandler.AvailableCars)
			protected.GET("/available-motorcycles", featuredHandler.AvailableMotorcycles)

			protected.GET("/discounts", discountHandler.List)
			protected.POST("/discounts", discountHandler.Create)
			protected.GET("/discounts/:id", discountHandler.Get)
			protected.PUT("/discounts/:id", discountHandler.Update)
			protected.DELETE("/discounts/:id", discountHandler.Delete)
			protected.GET("/available-cars-discount", discountHandler.AvailableCars)
			protected.GET("/available-motorcycles-discount", discountHandler.AvailableMotorcycles)

			protected.GET("/contact-messages", contactHandler.List)
			protected.GET("/contact-messages/:id", contactHandler.Get)
			protected.PATCH("/contact-messages/:id/read", contactHandler.MarkRead)
			protected.DELETE("/contact-messages/:id", contactHandler.Delete)

			protected.GET("/subscribers", subscriberHandler.List)
			protected.GET("/subscribers/export", subscriberHandler.ExportCSV)

			upload := protected.Group("/")
			upload.Use(middleware.UploadRateLimit())
			upload.POST("/uploads/vehicle-image", uploadHandler.Upload)
		}
	}

	return r
}
