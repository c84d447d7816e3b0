package automation

import (
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/assets"
	"github.com/onegreenvn/autocontent-backend/internal/services/contentgen"
)

// PreferencesFromSettings maps the settings row onto generator preferences
func PreferencesFromSettings(s *models.SystemSettings) contentgen.ContentPreferences {
	customKey := s.CustomKey
	return contentgen.ContentPreferences{
		Tone:            s.ContentTone,
		Length:          s.ContentLength,
		BrandName:       s.BrandName,
		Language:        s.VideoLanguage,
		TargetKeywords:  []string(s.TargetKeywords),
		Font:            s.Font,
		PrimaryColor:    s.PrimaryColor,
		BackgroundStyle: s.BackgroundStyle,
		AIProvider:      s.AIProvider,
		OpenAIKey:       s.OpenAIKey,
		CustomBaseURL:   s.CustomBaseURL,
		CustomKey:       &customKey,
		CustomModel:     s.CustomModel,
	}
}

// AssetRequestFor builds the asset request for a generated item
func AssetRequestFor(s *models.SystemSettings, req contentgen.ContentRequest, platform string, generated contentgen.GeneratedContent) assets.AssetRequest {
	assetReq := assets.AssetRequest{
		Type:            req.Type,
		Platform:        platform,
		Style:           req.Style,
		Niche:           req.Niche,
		Font:            s.Font,
		PrimaryColor:    s.PrimaryColor,
		BackgroundStyle: s.BackgroundStyle,
		GrokKey:         s.GrokKey,
		Title:           generated.Title,
		Description:     generated.Description,
	}
	if req.Type == models.ContentTypePhoto {
		assetReq.ImageDescription = generated.ImageDescription
	}
	return assetReq
}

// BuildContentItem combines generated text and resolved media into a ready item
func BuildContentItem(req contentgen.ContentRequest, platform string, generated contentgen.GeneratedContent, asset *assets.GenerationResult) *models.ContentItem {
	item := &models.ContentItem{
		Title:       generated.Title,
		Description: generated.Description,
		Script:      generated.Script,
		Hashtags:    generated.Hashtags,
		ImageURL:    generated.ImageURL,
		Niche:       req.Niche,
		Style:       req.Style,
		Platform:    platform,
		Type:        req.Type,
		Status:      models.ContentStatusReady,
		CreatedAt:   time.Now(),
	}
	if item.Hashtags == nil {
		item.Hashtags = []string{}
	}

	if asset == nil {
		return item
	}
	if assets.IsVideo(req.Type) {
		item.VideoURL = asset.URL
	} else {
		item.ImageURL = asset.URL
	}
	item.ThumbnailURL = asset.ThumbnailURL
	item.Duration = asset.Duration
	item.Resolution = asset.Resolution
	item.FileSize = asset.FileSize
	return item
}
