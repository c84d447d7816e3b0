package models

import (
	"time"

	"gorm.io/datatypes"
)

// SystemSettingsID is the primary key of the singleton settings row
const SystemSettingsID = 1

// AI provider identifiers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderCustom = "custom"
)

// SystemSettings holds API credentials and content preferences
type SystemSettings struct {
	ID              uint                        `json:"-" gorm:"primaryKey"`
	OpenAIKey       string                      `json:"openai_key" gorm:"type:varchar(255)"`
	YouTubeKey      string                      `json:"youtube_key" gorm:"type:varchar(255)"`
	TikTokKey       string                      `json:"tiktok_key" gorm:"type:varchar(255)"`
	FacebookKey     string                      `json:"facebook_key" gorm:"type:varchar(255)"`
	GeminiKey       string                      `json:"gemini_key" gorm:"type:varchar(255)"`
	GrokKey         string                      `json:"grok_key" gorm:"type:varchar(255)"`
	ContentTone     string                      `json:"content_tone" gorm:"type:varchar(100);default:'Professional & Engaging'"`
	ContentLength   string                      `json:"content_length" gorm:"type:varchar(10);default:'medium'"`
	BrandName       string                      `json:"brand_name" gorm:"type:varchar(255);default:'AutoContent AI'"`
	VideoResolution string                      `json:"video_resolution" gorm:"type:varchar(20);default:'1080p'"`
	VideoLanguage   string                      `json:"video_language" gorm:"type:varchar(50);default:'English'"`
	TargetKeywords  datatypes.JSONSlice[string] `json:"target_keywords" gorm:"type:jsonb"`
	Font            string                      `json:"font" gorm:"type:varchar(100);default:'Inter'"`
	PrimaryColor    string                      `json:"primary_color" gorm:"type:varchar(20);default:'#0070f3'"`
	BackgroundStyle string                      `json:"background_style" gorm:"type:varchar(50);default:'solid'"`
	AIProvider      string                      `json:"ai_provider" gorm:"type:varchar(20);default:'gemini'"`
	CustomBaseURL   string                      `json:"custom_base_url" gorm:"type:varchar(500)"`
	CustomKey       string                      `json:"custom_key" gorm:"type:varchar(255)"`
	CustomModel     string                      `json:"custom_model" gorm:"type:varchar(100)"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// TableName specifies the table name for the SystemSettings model
func (SystemSettings) TableName() string {
	return "system_settings"
}

// DefaultSystemSettings returns the settings created on first read
func DefaultSystemSettings() *SystemSettings {
	return &SystemSettings{
		ID:              SystemSettingsID,
		ContentTone:     "Professional & Engaging",
		ContentLength:   "medium",
		BrandName:       "AutoContent AI",
		VideoResolution: "1080p",
		VideoLanguage:   "English",
		TargetKeywords:  []string{},
		Font:            "Inter",
		PrimaryColor:    "#0070f3",
		BackgroundStyle: "solid",
		AIProvider:      ProviderGemini,
	}
}

// UpdateSettingsRequest is a partial settings update. Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	OpenAIKey       *string  `json:"openai_key,omitempty"`
	YouTubeKey      *string  `json:"youtube_key,omitempty"`
	TikTokKey       *string  `json:"tiktok_key,omitempty"`
	FacebookKey     *string  `json:"facebook_key,omitempty"`
	GeminiKey       *string  `json:"gemini_key,omitempty"`
	GrokKey         *string  `json:"grok_key,omitempty"`
	ContentTone     *string  `json:"content_tone,omitempty" example:"Witty & Casual"`
	ContentLength   *string  `json:"content_length,omitempty" binding:"omitempty,oneof=short medium long" example:"short"`
	BrandName       *string  `json:"brand_name,omitempty" example:"AutoContent AI"`
	VideoResolution *string  `json:"video_resolution,omitempty" binding:"omitempty,oneof=1080p 4k vertical"`
	VideoLanguage   *string  `json:"video_language,omitempty" example:"English"`
	TargetKeywords  []string `json:"target_keywords,omitempty"`
	Font            *string  `json:"font,omitempty"`
	PrimaryColor    *string  `json:"primary_color,omitempty" example:"#0070f3"`
	BackgroundStyle *string  `json:"background_style,omitempty" example:"gradient"`
	AIProvider      *string  `json:"ai_provider,omitempty" binding:"omitempty,oneof=gemini openai custom"`
	CustomBaseURL   *string  `json:"custom_base_url,omitempty"`
	CustomKey       *string  `json:"custom_key,omitempty"`
	CustomModel     *string  `json:"custom_model,omitempty"`
}
