package routes

import (
	"net/http"

	adminhandler "pixi/internal/admin/handler"
	adminservice "pixi/internal/admin/service"
	authhandler "pixi/internal/auth/handler"
	authrepo "pixi/internal/auth/repository"
	authservice "pixi/internal/auth/service"
	bloghandler "pixi/internal/blog/handler"
	blogrepo "pixi/internal/blog/repository"
	blogservice "pixi/internal/blog/service"
	"pixi/internal/config"
	"pixi/internal/database"
	"pixi/internal/logger"
	"pixi/internal/mailer"
	"pixi/internal/middleware"
	profilehandler "pixi/internal/profile/handler"
	profileservice "pixi/internal/profile/service"
	"pixi/internal/storage"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *database.Database, mail mailer.Mailer, store storage.ObjectStore) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := authrepo.NewRepository(db)
	blogRepository := blogrepo.NewRepository(db)

	authService := authservice.NewService(userRepository, mail, cfg)
	authHandler := authhandler.NewHandler(authService)

	blogService := blogservice.NewService(blogRepository)
	blogHandler := bloghandler.NewHandler(blogService)

	profileService := profileservice.NewService(userRepository, blogRepository)
	profileHandler := profilehandler.NewHandler(profileService, store)

	adminService := adminservice.NewService(userRepository, blogRepository)
	adminHandler := adminhandler.NewHandler(adminService)

	uploadHandler := storage.NewUploadHandler(store)

	api := router.Group("/api")
	{
		authHandler.RegisterRoutes(api)
		blogHandler.RegisterRoutes(api)
		profileHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg, userRepository))
		{
			authHandler.RegisterProtectedRoutes(protected)
			blogHandler.RegisterProtectedRoutes(protected)
			profileHandler.RegisterProtectedRoutes(protected)
			uploadHandler.RegisterProtectedRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
