package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scheduled post statuses
const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusPublished = "published"
	ScheduleStatusFailed    = "failed"
	ScheduleStatusCancelled = "cancelled"
)

// ScheduledPost publishes a content item to a platform at a given time
type ScheduledPost struct {
	ID          string       `json:"id" gorm:"primaryKey;type:uuid"`
	ContentID   string       `json:"content_id" gorm:"type:uuid;not null;index"`
	Platform    string       `json:"platform" gorm:"type:varchar(20);not null"`
	ScheduledAt time.Time    `json:"scheduled_at" gorm:"not null;index"`
	Status      string       `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Message     string       `json:"message,omitempty" gorm:"type:text"`
	CreatedAt   time.Time    `json:"created_at"`
	Content     *ContentItem `json:"content,omitempty" gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ScheduledPost model
func (ScheduledPost) TableName() string {
	return "scheduled_posts"
}

// BeforeCreate assigns a UUID when none is set
func (s *ScheduledPost) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// CreateScheduleRequest is the payload for scheduling a post
type CreateScheduleRequest struct {
	ContentID   string    `json:"content_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Platform    string    `json:"platform" binding:"required,oneof=youtube tiktok facebook" example:"youtube"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required" example:"2026-01-21T10:30:00Z"`
}

// PublishRequest is the payload for publishing a content item immediately
type PublishRequest struct {
	ContentID string `json:"content_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Platform  string `json:"platform" binding:"required" example:"tiktok"`
}

// PublishResult is the outcome of one simulated publish
type PublishResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Message string `json:"message"`
}
