package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity types shown in the dashboard feed
const (
	ActivityGenerate   = "generate"
	ActivityPublish    = "publish"
	ActivitySchedule   = "schedule"
	ActivityAutomation = "automation"
	ActivityAuth       = "auth"
	ActivityError      = "error"
)

// ActivityLog is one human-readable entry of the activity feed
type ActivityLog struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Type        string         `json:"type" gorm:"type:varchar(20);not null;index" example:"automation"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null" example:"Pipeline Run Complete"`
	Description string         `json:"description" gorm:"type:text"`
	Metadata    datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
	Timestamp   time.Time      `json:"timestamp" gorm:"not null;index"`
}

// TableName specifies the table name for the ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// BeforeCreate assigns a UUID and timestamp when missing
func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	return nil
}
