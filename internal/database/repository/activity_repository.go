package repository

import (
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"gorm.io/gorm"
)

// ActivityRepository handles database operations for the activity feed
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity entry
func (r *ActivityRepository) Create(activity *models.ActivityLog) error {
	return r.db.Create(activity).Error
}

// List retrieves the latest activities, optionally of one type
func (r *ActivityRepository) List(activityType string, limit, offset int) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	query := r.db.Model(&models.ActivityLog{})
	if activityType != "" {
		query = query.Where("type = ?", activityType)
	}
	err := query.Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, err
}

// DeleteOlderThan deletes activities older than the given number of days
func (r *ActivityRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days)
	result := r.db.Where("timestamp < ?", cutoffDate).Delete(&models.ActivityLog{})
	return result.RowsAffected, result.Error
}

// DeleteAll removes every activity entry
func (r *ActivityRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ActivityLog{}).Error
}
