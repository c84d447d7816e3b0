package services

import (
	"context"
	"fmt"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/automation"
	"github.com/onegreenvn/autocontent-backend/internal/services/contentgen"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MaxBatchCount caps how many items one generate request may produce
const MaxBatchCount = 10

// BatchGenerator produces several text variations for one request
type BatchGenerator interface {
	GenerateBatch(ctx context.Context, req contentgen.ContentRequest, count int, legacyKey string, prefs contentgen.ContentPreferences) []contentgen.GeneratedContent
}

type contentStore interface {
	GetSettings() (*models.SystemSettings, error)
	AddContent(item *models.ContentItem) error
}

// ContentService generates and manages the content library
type ContentService struct {
	contentRepo *repository.ContentRepository
	store       contentStore
	generator   BatchGenerator
	assets      automation.AssetGenerator
}

func NewContentService(db *gorm.DB, store *Store, generator BatchGenerator, assetGen automation.AssetGenerator) *ContentService {
	return &ContentService{
		contentRepo: repository.NewContentRepository(db),
		store:       store,
		generator:   generator,
		assets:      assetGen,
	}
}

// NormalizeCount clamps the requested batch size to 1..MaxBatchCount
func NormalizeCount(count int) int {
	if count < 1 {
		return 1
	}
	if count > MaxBatchCount {
		return MaxBatchCount
	}
	return count
}

// Generate creates count items for the request, resolves media for each and stores them
func (s *ContentService) Generate(ctx context.Context, req *models.GenerateContentRequest) ([]*models.ContentItem, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	genReq := contentgen.ContentRequest{
		Niche:       req.Niche,
		Style:       req.Style,
		Platform:    req.Platform,
		Type:        req.Type,
		CustomTopic: req.CustomTopic,
	}
	count := NormalizeCount(req.Count)

	logrus.Infof("Generating %d %s item(s) for niche %s on %s", count, req.Type, req.Niche, req.Platform)

	results := s.generator.GenerateBatch(ctx, genReq, count, settings.GeminiKey, automation.PreferencesFromSettings(settings))

	items := make([]*models.ContentItem, 0, len(results))
	for _, generated := range results {
		asset := s.assets.GenerateAsset(ctx, automation.AssetRequestFor(settings, genReq, req.Platform, generated))
		item := automation.BuildContentItem(genReq, req.Platform, generated, &asset)
		if err := s.store.AddContent(item); err != nil {
			// Items saved so far are returned so the caller can still report them
			return items, fmt.Errorf("failed to save item %d of %d: %w", len(items)+1, len(results), err)
		}
		items = append(items, item)
	}
	return items, nil
}

// List returns a page of the content library
func (s *ContentService) List(filter models.ContentFilter) ([]models.ContentItem, models.ContentPagination, error) {
	filter = filter.Normalize()
	items, total, err := s.contentRepo.List(filter)
	if err != nil {
		return nil, models.ContentPagination{}, fmt.Errorf("failed to list content: %w", err)
	}
	return items, filter.PaginationFor(total), nil
}

// Get returns one content item
func (s *ContentService) Get(id string) (*models.ContentItem, error) {
	item, err := s.contentRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get content %s: %w", id, err)
	}
	return item, nil
}

// Delete removes a content item; it returns gorm.ErrRecordNotFound when nothing was deleted
func (s *ContentService) Delete(id string) error {
	deleted, err := s.contentRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if !deleted {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListAll returns the whole library, used by exports
func (s *ContentService) ListAll() ([]models.ContentItem, error) {
	items, err := s.contentRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return items, nil
}
