package repository

import (
	"errors"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"gorm.io/gorm"
)

// SettingsRepository reads and writes the singleton system settings
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings, creating them with defaults on first read
func (r *SettingsRepository) Get() (*models.SystemSettings, error) {
	var settings models.SystemSettings
	err := r.db.First(&settings, models.SystemSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultSystemSettings()
		if err := r.db.Create(defaults).Error; err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save persists the full settings row
func (r *SettingsRepository) Save(settings *models.SystemSettings) error {
	settings.ID = models.SystemSettingsID
	return r.db.Save(settings).Error
}

// Delete removes the settings; the next Get recreates defaults
func (r *SettingsRepository) Delete() error {
	return r.db.Delete(&models.SystemSettings{}, models.SystemSettingsID).Error
}
