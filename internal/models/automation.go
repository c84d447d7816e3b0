package models

import (
	"time"

	"gorm.io/datatypes"
)

// AutomationConfigID is the primary key of the singleton automation row
const AutomationConfigID = 1

// Automation run frequencies
const (
	FrequencyHourly = "hourly"
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// AutomationConfig drives the scheduled content pipeline
type AutomationConfig struct {
	ID        uint                        `json:"-" gorm:"primaryKey"`
	Enabled   bool                        `json:"enabled" gorm:"default:false"`
	Niches    datatypes.JSONSlice[string] `json:"niches" gorm:"type:jsonb"`
	Style     string                      `json:"style" gorm:"type:varchar(100);default:'educational'"`
	Platforms datatypes.JSONSlice[string] `json:"platforms" gorm:"type:jsonb"`
	Types     datatypes.JSONSlice[string] `json:"types" gorm:"type:jsonb"`
	Frequency string                      `json:"frequency" gorm:"type:varchar(20);default:'daily'"`
	NextRun   *time.Time                  `json:"next_run,omitempty"`
	LastRunAt *time.Time                  `json:"last_run_at,omitempty"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// TableName specifies the table name for the AutomationConfig model
func (AutomationConfig) TableName() string {
	return "automation_configs"
}

// DefaultAutomationConfig returns the configuration created on first read
func DefaultAutomationConfig() *AutomationConfig {
	return &AutomationConfig{
		ID:        AutomationConfigID,
		Enabled:   false,
		Niches:    []string{"Technology", "Motivation"},
		Style:     "educational",
		Platforms: []string{"youtube", "tiktok", "facebook"},
		Types:     []string{ContentTypeVideo, ContentTypeShorts},
		Frequency: FrequencyDaily,
	}
}

// Interval converts the configured frequency into a run interval.
// Unknown values are treated as daily.
func (c *AutomationConfig) Interval() time.Duration {
	switch c.Frequency {
	case FrequencyHourly:
		return time.Hour
	case FrequencyWeekly:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// UpdateAutomationRequest is a partial update of the automation config
type UpdateAutomationRequest struct {
	Niches    []string `json:"niches,omitempty" example:"Technology,Finance"`
	Style     *string  `json:"style,omitempty" example:"educational"`
	Platforms []string `json:"platforms,omitempty" example:"youtube,tiktok"`
	Types     []string `json:"types,omitempty" example:"video,shorts"`
	Frequency *string  `json:"frequency,omitempty" binding:"omitempty,oneof=hourly daily weekly" example:"daily"`
}
