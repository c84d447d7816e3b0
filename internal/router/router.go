package router

import (
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/handlers"
	"github.com/onegreenvn/autocontent-backend/internal/middleware"
	"github.com/onegreenvn/autocontent-backend/internal/services"
	"github.com/onegreenvn/autocontent-backend/internal/services/api_key"
	"github.com/onegreenvn/autocontent-backend/internal/services/auth"
	"github.com/onegreenvn/autocontent-backend/internal/services/excel"
	"github.com/onegreenvn/autocontent-backend/internal/services/publish"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services bundles everything the HTTP layer depends on
type Services struct {
	Auth       *auth.AuthService
	APIKeys    *api_key.Service
	SSEHub     *services.SSEHub
	Activity   *services.ActivityService
	Content    *services.ContentService
	Exporter   *excel.Service
	Automation *services.AutomationService
	Publisher  *publish.Publisher
	Accounts   *services.AccountService
	Schedule   *services.ScheduleService
	Settings   *services.SettingsService
	Dashboard  *services.DashboardService
	System     *services.SystemService
}

// SetupRouter configures the Gin router with every API route
func SetupRouter(svc *Services, basePath string) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Middleware: API key first, bearer token skips when the key already authenticated
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(svc.APIKeys)
	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(svc.Auth)

	authHandler := handlers.NewAuthHandler(svc.Auth, svc.System)
	apiKeyHandler := handlers.NewAPIKeyHandler(svc.APIKeys)
	contentHandler := handlers.NewContentHandler(svc.Content, svc.Exporter, basePath)
	automationHandler := handlers.NewAutomationHandler(svc.Automation)
	publishHandler := handlers.NewPublishHandler(svc.Publisher, svc.Accounts, svc.Content)
	scheduleHandler := handlers.NewScheduleHandler(svc.Schedule)
	settingsHandler := handlers.NewSettingsHandler(svc.Settings)
	accountHandler := handlers.NewAccountHandler(svc.Accounts)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	activityHandler := handlers.NewActivityHandler(svc.Activity, svc.SSEHub)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Auth routes (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.RefreshToken)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(apiKeyMiddleware.APIKeyAuthMiddleware())
		protected.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
		{
			authProtected := protected.Group("/auth")
			{
				authProtected.POST("/logout", authHandler.Logout)
				authProtected.GET("/me", authHandler.Me)
				authProtected.POST("/reset", middleware.RequireAdmin(), authHandler.Reset)
			}

			content := protected.Group("/content")
			{
				content.GET("", contentHandler.List)
				content.POST("", contentHandler.Generate)
				content.GET("/export", contentHandler.Export)
				content.GET("/export/:filename", contentHandler.Download)
				content.GET("/:id", contentHandler.Get)
				content.DELETE("/:id", contentHandler.Delete)
			}

			automation := protected.Group("/automation")
			{
				automation.GET("", automationHandler.Get)
				automation.PUT("", automationHandler.Update)
				automation.POST("/toggle", automationHandler.Toggle)
				automation.POST("/run", automationHandler.Run)
			}

			publishGroup := protected.Group("/publish")
			{
				publishGroup.GET("", publishHandler.History)
				publishGroup.POST("", publishHandler.Publish)
			}

			schedule := protected.Group("/schedule")
			{
				schedule.GET("", scheduleHandler.List)
				schedule.POST("", scheduleHandler.Create)
				schedule.DELETE("/:id", scheduleHandler.Cancel)
			}

			settings := protected.Group("/settings")
			{
				settings.GET("", settingsHandler.Get)
				settings.PUT("", settingsHandler.Update)
			}

			accounts := protected.Group("/accounts")
			{
				accounts.GET("", accountHandler.List)
				accounts.POST("/:platform/connect", accountHandler.Connect)
				accounts.POST("/:platform/disconnect", accountHandler.Disconnect)
			}

			protected.GET("/dashboard", dashboardHandler.Get)

			activity := protected.Group("/activity")
			{
				activity.GET("", activityHandler.List)
				activity.GET("/stream", activityHandler.Stream)
			}

			apiKeys := protected.Group("/api-key")
			{
				apiKeys.GET("", apiKeyHandler.Get)
				apiKeys.DELETE("", apiKeyHandler.Delete)
				apiKeys.POST("/generate", apiKeyHandler.Generate)
			}
		}
	}

	return r
}
