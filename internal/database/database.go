package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/onegreenvn/autocontent-backend/internal/config"
	"github.com/onegreenvn/autocontent-backend/internal/models"
)

// InitDB opens the PostgreSQL connection, migrates the schema and seeds defaults
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if !cfg.Valid() {
		return nil, fmt.Errorf("missing required database environment variables. Please check your .env file")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	gormLogger := logger.New(
		logrus.StandardLogger(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   gormLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.Exec("CREATE SCHEMA IF NOT EXISTS public").Error; err != nil {
		return nil, fmt.Errorf("failed to create public schema: %w", err)
	}
	if err := db.Exec("SET search_path TO public").Error; err != nil {
		return nil, fmt.Errorf("failed to set search_path: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := Seed(db); err != nil {
		// Seeding is best-effort; the API still works with an empty database
		logrus.Warnf("Failed to seed default data: %v", err)
	}

	logrus.Info("Database connection established and migrations completed")
	return db, nil
}

// Migrate creates or updates every table used by the service
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.APIKey{},
		&models.ContentItem{},
		&models.ActivityLog{},
		&models.AutomationConfig{},
		&models.SystemSettings{},
		&models.ScheduledPost{},
		&models.PlatformAccount{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Dispatcher polls pending posts by due time
	err = db.Exec("CREATE INDEX IF NOT EXISTS idx_scheduled_posts_status_due ON scheduled_posts(status, scheduled_at)").Error
	if err != nil {
		logrus.Warnf("Failed to create index on scheduled_posts(status, scheduled_at): %v", err)
	}
	return nil
}
