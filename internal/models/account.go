package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportedPlatforms are the publish targets seeded on startup
var SupportedPlatforms = []string{"youtube", "tiktok", "facebook"}

// PlatformAccount is a connected social media account
type PlatformAccount struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Platform  string    `json:"platform" gorm:"type:varchar(20);not null;unique"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Connected bool      `json:"connected" gorm:"default:false"`
	APIKey    string    `json:"-" gorm:"type:varchar(255)"`
	Followers int       `json:"followers" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the PlatformAccount model
func (PlatformAccount) TableName() string {
	return "platform_accounts"
}

// BeforeCreate assigns a UUID when none is set
func (a *PlatformAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ConnectAccountRequest optionally carries the platform API key
type ConnectAccountRequest struct {
	APIKey string `json:"api_key,omitempty"`
}
