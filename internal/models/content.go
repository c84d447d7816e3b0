package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Content lifecycle statuses
const (
	ContentStatusDraft      = "draft"
	ContentStatusGenerating = "generating"
	ContentStatusReady      = "ready"
	ContentStatusPublishing = "publishing"
	ContentStatusPublished  = "published"
	ContentStatusFailed     = "failed"
)

// Content types
const (
	ContentTypeVideo  = "video"
	ContentTypePhoto  = "photo"
	ContentTypeShorts = "shorts"
	ContentTypeText   = "text"
)

// ContentItem is a generated piece of content with its asset URLs
type ContentItem struct {
	ID           string                      `json:"id" gorm:"primaryKey;type:uuid"`
	Title        string                      `json:"title" gorm:"type:varchar(500);not null"`
	Description  string                      `json:"description" gorm:"type:text"`
	Script       string                      `json:"script" gorm:"type:text"`
	Hashtags     datatypes.JSONSlice[string] `json:"hashtags" gorm:"type:jsonb"`
	ImageURL     string                      `json:"image_url,omitempty" gorm:"type:text"`
	VideoURL     string                      `json:"video_url,omitempty" gorm:"type:text"`
	ThumbnailURL string                      `json:"thumbnail_url,omitempty" gorm:"type:text"`
	Duration     int                         `json:"duration,omitempty"`
	Resolution   string                      `json:"resolution,omitempty" gorm:"type:varchar(20)"`
	FileSize     string                      `json:"file_size,omitempty" gorm:"type:varchar(20)"`
	Niche        string                      `json:"niche" gorm:"type:varchar(100);index"`
	Style        string                      `json:"style" gorm:"type:varchar(100)"`
	Platform     string                      `json:"platform" gorm:"type:varchar(20);index"`
	Type         string                      `json:"type" gorm:"type:varchar(20);index"`
	Status       string                      `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	PublishedURL string                      `json:"published_url,omitempty" gorm:"type:text"`
	PublishedAt  *time.Time                  `json:"published_at,omitempty"`
	CreatedAt    time.Time                   `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// TableName specifies the table name for the ContentItem model
func (ContentItem) TableName() string {
	return "content_items"
}

// BeforeCreate assigns a UUID when none is set
func (c *ContentItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// GenerateContentRequest is the payload for on-demand batch generation
type GenerateContentRequest struct {
	Niche       string `json:"niche" binding:"required" example:"Technology"`
	Style       string `json:"style" binding:"required" example:"educational"`
	Platform    string `json:"platform" binding:"required,oneof=youtube tiktok facebook all" example:"youtube"`
	Type        string `json:"type" binding:"required,oneof=video photo shorts text" example:"video"`
	CustomTopic string `json:"custom_topic,omitempty" example:"Quantum Computing"`
	Count       int    `json:"count,omitempty" example:"1"`
}

// Content library page sizes
const (
	DefaultContentPageSize = 20
	MaxContentPageSize     = 100
)

// ContentFilter narrows and pages a content library listing. It binds from the query string.
type ContentFilter struct {
	Status   string `form:"status"`
	Type     string `form:"type"`
	Platform string `form:"platform"`
	Niche    string `form:"niche"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// Normalize starts at page 1 and keeps the page size within 1..MaxContentPageSize
func (f ContentFilter) Normalize() ContentFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultContentPageSize
	}
	if f.PageSize > MaxContentPageSize {
		f.PageSize = MaxContentPageSize
	}
	return f
}

// Offset is the number of items before the requested page
func (f ContentFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// ContentPagination locates a listing page within the filtered library
type ContentPagination struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// PaginationFor builds the pagination block of a normalized filter matching total items
func (f ContentFilter) PaginationFor(total int64) ContentPagination {
	totalPages := int((total + int64(f.PageSize) - 1) / int64(f.PageSize))
	if totalPages == 0 {
		totalPages = 1
	}
	return ContentPagination{
		Total:       total,
		Page:        f.Page,
		PageSize:    f.PageSize,
		TotalPages:  totalPages,
		HasNext:     f.Page < totalPages,
		HasPrevious: f.Page > 1,
	}
}
