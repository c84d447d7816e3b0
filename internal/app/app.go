// Package app wires the services shared by the API server and the CLI.
package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/onegreenvn/autocontent-backend/internal/config"
	"github.com/onegreenvn/autocontent-backend/internal/database"
	"github.com/onegreenvn/autocontent-backend/internal/router"
	"github.com/onegreenvn/autocontent-backend/internal/services"
	"github.com/onegreenvn/autocontent-backend/internal/services/api_key"
	"github.com/onegreenvn/autocontent-backend/internal/services/assets"
	"github.com/onegreenvn/autocontent-backend/internal/services/auth"
	"github.com/onegreenvn/autocontent-backend/internal/services/automation"
	"github.com/onegreenvn/autocontent-backend/internal/services/contentgen"
	"github.com/onegreenvn/autocontent-backend/internal/services/excel"
	"github.com/onegreenvn/autocontent-backend/internal/services/publish"
)

// App holds the wired services
type App struct {
	DB         *gorm.DB
	SSEHub     *services.SSEHub
	Activity   *services.ActivityService
	Store      *services.Store
	Runner     *automation.Runner
	Scheduler  *automation.Scheduler
	Publisher  *publish.Publisher
	Dispatcher *publish.Dispatcher
	Services   *router.Services

	redis *redis.Client
}

// New builds every service on top of an open database. Background workers
// are created but not started.
func New(db *gorm.DB, serverCfg *config.ServerConfig, authCfg *config.AuthConfig, schedCfg *config.SchedulerConfig, redisCfg *config.RedisConfig) *App {
	a := &App{DB: db}

	a.SSEHub = services.NewSSEHub()
	a.Activity = services.NewActivityService(db, a.SSEHub)
	a.Store = services.NewStore(db, a.Activity)

	textGen := contentgen.NewGenerator()
	assetGen := assets.NewGenerator(assets.NewGrokClient(""), nil, nil)
	a.Runner = automation.NewRunner(a.Store, textGen, assetGen, nil)

	var locker automation.Locker
	if redisCfg.URL != "" {
		client, err := database.NewRedisClient(redisCfg.URL)
		if err != nil {
			logrus.Warnf("Failed to connect to Redis, using in-process run lock: %v", err)
		} else {
			a.redis = client
			locker = automation.NewRedisLocker(client, redisCfg.LockTTL)
			logrus.Info("Automation run lock backed by Redis")
		}
	}
	a.Scheduler = automation.NewScheduler(a.Store, a.Runner, locker, schedCfg.AutomationInterval)

	a.Publisher = publish.NewPublisher(a.Store, publish.NewSimulator(nil, publish.DefaultLatency))
	a.Dispatcher = publish.NewDispatcher(a.Store, a.Publisher, schedCfg.DispatchInterval)

	a.Services = &router.Services{
		Auth:       auth.NewAuthService(db, authCfg, a.Activity),
		APIKeys:    api_key.NewService(db),
		SSEHub:     a.SSEHub,
		Activity:   a.Activity,
		Content:    services.NewContentService(db, a.Store, textGen, assetGen),
		Exporter:   excel.NewExcelService(serverCfg.ExportsDir),
		Automation: services.NewAutomationService(db, a.Activity, a.Scheduler),
		Publisher:  a.Publisher,
		Accounts:   services.NewAccountService(db, a.Activity),
		Schedule:   services.NewScheduleService(db, a.Activity),
		Settings:   services.NewSettingsService(db, a.Activity),
		Dashboard:  services.NewDashboardService(db, a.Activity),
		System:     services.NewSystemService(db, a.Activity),
	}

	return a
}

// Close releases connections opened by New
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logrus.Warnf("Failed to close Redis client: %v", err)
		}
	}
}
