package repository

import (
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"gorm.io/gorm"
)

// ScheduleRepository handles database operations for scheduled posts
type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create stores a new scheduled post
func (r *ScheduleRepository) Create(post *models.ScheduledPost) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a scheduled post by ID
func (r *ScheduleRepository) GetByID(id string) (*models.ScheduledPost, error) {
	var post models.ScheduledPost
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListWithContent returns all scheduled posts ordered by due time, with their content
func (r *ScheduleRepository) ListWithContent() ([]models.ScheduledPost, error) {
	var posts []models.ScheduledPost
	err := r.db.Preload("Content").Order("scheduled_at ASC").Find(&posts).Error
	return posts, err
}

// Upcoming returns the next n pending posts
func (r *ScheduleRepository) Upcoming(n int) ([]models.ScheduledPost, error) {
	var posts []models.ScheduledPost
	err := r.db.Preload("Content").
		Where("status = ?", models.ScheduleStatusPending).
		Order("scheduled_at ASC").
		Limit(n).
		Find(&posts).Error
	return posts, err
}

// ListDue returns pending posts scheduled at or before now
func (r *ScheduleRepository) ListDue(now time.Time) ([]models.ScheduledPost, error) {
	var posts []models.ScheduledPost
	err := r.db.Where("status = ? AND scheduled_at <= ?", models.ScheduleStatusPending, now).
		Order("scheduled_at ASC").
		Find(&posts).Error
	return posts, err
}

// UpdateStatus sets the status and result message of a post
func (r *ScheduleRepository) UpdateStatus(id, status, message string) error {
	return r.db.Model(&models.ScheduledPost{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "message": message}).Error
}

// CountPending returns the number of pending posts
func (r *ScheduleRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&models.ScheduledPost{}).Where("status = ?", models.ScheduleStatusPending).Count(&count).Error
	return count, err
}

// DeleteAll removes every scheduled post
func (r *ScheduleRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ScheduledPost{}).Error
}
