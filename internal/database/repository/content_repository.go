package repository

import (
	"github.com/onegreenvn/autocontent-backend/internal/models"

	"gorm.io/gorm"
)

// ContentRepository handles database operations for generated content
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository instance
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Create stores a new content item
func (r *ContentRepository) Create(item *models.ContentItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a content item by ID
func (r *ContentRepository) GetByID(id string) (*models.ContentItem, error) {
	var item models.ContentItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update saves every field of a content item
func (r *ContentRepository) Update(item *models.ContentItem) error {
	return r.db.Save(item).Error
}

// Delete removes a content item and its pending schedules
func (r *ContentRepository) Delete(id string) (bool, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", id).Delete(&models.ScheduledPost{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ContentItem{}, "id = ?", id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected > 0, err
}

// List returns content newest first, filtered and paginated. filter must be normalized.
func (r *ContentRepository) List(filter models.ContentFilter) ([]models.ContentItem, int64, error) {
	var items []models.ContentItem
	var total int64

	query := r.db.Model(&models.ContentItem{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	if filter.Niche != "" {
		query = query.Where("niche = ?", filter.Niche)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListAll returns every content item newest first
func (r *ContentRepository) ListAll() ([]models.ContentItem, error) {
	var items []models.ContentItem
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

// Recent returns the latest n content items
func (r *ContentRepository) Recent(n int) ([]models.ContentItem, error) {
	var items []models.ContentItem
	err := r.db.Order("created_at DESC").Limit(n).Find(&items).Error
	return items, err
}

// ListByStatus returns content with the given status, newest first
func (r *ContentRepository) ListByStatus(status string) ([]models.ContentItem, error) {
	var items []models.ContentItem
	err := r.db.Where("status = ?", status).Order("updated_at DESC").Find(&items).Error
	return items, err
}

// Count returns the number of items, optionally restricted to one status
func (r *ContentRepository) Count(status string) (int64, error) {
	var count int64
	query := r.db.Model(&models.ContentItem{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

// DeleteAll removes every content item
func (r *ContentRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ContentItem{}).Error
}
