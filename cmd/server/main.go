package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/onegreenvn/autocontent-backend/docs"
	"github.com/onegreenvn/autocontent-backend/internal/app"
	"github.com/onegreenvn/autocontent-backend/internal/config"
	"github.com/onegreenvn/autocontent-backend/internal/database"
	"github.com/onegreenvn/autocontent-backend/internal/router"
	"github.com/onegreenvn/autocontent-backend/internal/services"
	"github.com/onegreenvn/autocontent-backend/internal/services/auth"
	"github.com/onegreenvn/autocontent-backend/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title AutoContent API
// @version 1.0
// @description AI content generation, scheduling and publishing backend
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter `Bearer ` followed by your JWT token (e.g. "Bearer <token>") or `ApiKey ` followed by your API key (e.g. "ApiKey <key>")

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	serverCfg := config.GetServerConfig()
	schedCfg := config.GetSchedulerConfig()

	// Set Swagger base path dynamically
	docs.SwaggerInfo.BasePath = serverCfg.BasePath

	configureLogging(serverCfg.LogLevel)

	// Initialize Sentry
	utils.InitSentry()
	defer utils.FlushSentry()

	// Initialize database connection
	db, err := database.InitDB(config.GetDatabaseConfig())
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	a := app.New(db, serverCfg, config.GetAuthConfig(), schedCfg, config.GetRedisConfig())
	defer a.Close()

	// Route scheduled runs through RabbitMQ when the broker is reachable
	rabbitCfg := config.GetRabbitMQConfig()
	rabbitMQService, err := services.NewRabbitMQService(rabbitCfg)
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ, automation runs inline: %v", err)
	} else {
		logrus.Info("RabbitMQ service initialized")
		defer rabbitMQService.Close()

		if err := rabbitMQService.StartConsumer(rabbitCfg.Queue, a.Scheduler.HandleRunMessage); err != nil {
			logrus.Warnf("Failed to start automation run consumer: %v", err)
		} else {
			a.Scheduler.SetPublisher(rabbitMQService, rabbitCfg.Queue)
			logrus.Infof("Automation runs queued on %s", rabbitCfg.Queue)
		}
	}

	// Start background workers
	a.Scheduler.Start()
	defer a.Scheduler.Stop()

	a.Dispatcher.Start()
	defer a.Dispatcher.Stop()

	a.Activity.StartCleanup(schedCfg.ActivityCleanup, schedCfg.ActivityRetention)
	defer a.Activity.StopCleanup()

	tokenCleanupService := auth.NewTokenCleanupService(db, schedCfg.TokenCleanup)
	tokenCleanupService.Start()
	defer tokenCleanupService.Stop()

	r := router.SetupRouter(a.Services, serverCfg.BasePath)

	// Configure HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverCfg.Port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", serverCfg.Port)
		logrus.Infof("API Health Check: http://localhost:%s/api/v1/health", serverCfg.Port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", serverCfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logrus.Info("Server exited properly")
}

func configureLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
