package database

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

// Demo credentials created on an empty database
const (
	DemoUserEmail    = "demo@example.com"
	DemoUserPassword = "password123"
)

// Seed creates the demo user, singleton rows and platform accounts when missing
func Seed(db *gorm.DB) error {
	if err := seedDemoUser(db); err != nil {
		return err
	}
	if err := seedSingletons(db); err != nil {
		return err
	}
	return SeedPlatformAccounts(db)
}

func seedDemoUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	demo := &models.User{
		Email:        DemoUserEmail,
		PasswordHash: string(hashedPassword),
		Name:         "Demo User",
		IsActive:     true,
		IsAdmin:      true,
	}
	if err := db.Create(demo).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	logrus.Infof("Seeded demo user (%s / %s)", DemoUserEmail, DemoUserPassword)
	return nil
}

func seedSingletons(db *gorm.DB) error {
	var settings models.SystemSettings
	err := db.First(&settings, models.SystemSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(models.DefaultSystemSettings()).Error; err != nil {
			return fmt.Errorf("failed to create default settings: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var automation models.AutomationConfig
	err = db.First(&automation, models.AutomationConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(models.DefaultAutomationConfig()).Error; err != nil {
			return fmt.Errorf("failed to create default automation config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to load automation config: %w", err)
	}
	return nil
}

// SeedPlatformAccounts makes sure every supported platform has an account row
func SeedPlatformAccounts(db *gorm.DB) error {
	for _, platform := range models.SupportedPlatforms {
		account := models.PlatformAccount{Platform: platform, Name: "@autocontent"}
		if err := db.Where("platform = ?", platform).FirstOrCreate(&account).Error; err != nil {
			return fmt.Errorf("failed to seed %s account: %w", platform, err)
		}
	}
	return nil
}
