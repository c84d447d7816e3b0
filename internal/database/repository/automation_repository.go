package repository

import (
	"errors"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"gorm.io/gorm"
)

// AutomationRepository reads and writes the singleton automation config
type AutomationRepository struct {
	db *gorm.DB
}

func NewAutomationRepository(db *gorm.DB) *AutomationRepository {
	return &AutomationRepository{db: db}
}

// Get returns the automation config, creating it with defaults on first read
func (r *AutomationRepository) Get() (*models.AutomationConfig, error) {
	var cfg models.AutomationConfig
	err := r.db.First(&cfg, models.AutomationConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultAutomationConfig()
		if err := r.db.Create(defaults).Error; err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save persists the full automation config
func (r *AutomationRepository) Save(cfg *models.AutomationConfig) error {
	cfg.ID = models.AutomationConfigID
	return r.db.Save(cfg).Error
}

// SetNextRun records the last run time and schedules the next one
func (r *AutomationRepository) SetNextRun(lastRun time.Time, nextRun time.Time) error {
	return r.db.Model(&models.AutomationConfig{}).
		Where("id = ?", models.AutomationConfigID).
		Updates(map[string]interface{}{"last_run_at": lastRun, "next_run": nextRun}).Error
}

// Delete removes the config; the next Get recreates defaults
func (r *AutomationRepository) Delete() error {
	return r.db.Delete(&models.AutomationConfig{}, models.AutomationConfigID).Error
}
