package services

import (
	"fmt"
	"strings"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/utils"
	"gorm.io/gorm"
)

// SettingsService reads and updates the system settings singleton
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	activity     *ActivityService
}

func NewSettingsService(db *gorm.DB, activity *ActivityService) *SettingsService {
	return &SettingsService{
		settingsRepo: repository.NewSettingsRepository(db),
		activity:     activity,
	}
}

// Get returns the settings with every API key masked
func (s *SettingsService) Get() (*models.SystemSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return MaskSettings(settings), nil
}

// Update applies a partial update and returns the masked result
func (s *SettingsService) Update(req *models.UpdateSettingsRequest) (*models.SystemSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	ApplySettingsUpdate(settings, req)

	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	recordAfterCommit(s.activity, models.ActivityAutomation, "Settings & Preferences Updated",
		"System customization and API configurations were synchronized.")
	return MaskSettings(settings), nil
}

// MaskSettings returns a copy of settings with all secrets masked
func MaskSettings(settings *models.SystemSettings) *models.SystemSettings {
	masked := *settings
	masked.OpenAIKey = utils.MaskSecret(settings.OpenAIKey)
	masked.YouTubeKey = utils.MaskSecret(settings.YouTubeKey)
	masked.TikTokKey = utils.MaskSecret(settings.TikTokKey)
	masked.FacebookKey = utils.MaskSecret(settings.FacebookKey)
	masked.GeminiKey = utils.MaskSecret(settings.GeminiKey)
	masked.GrokKey = utils.MaskSecret(settings.GrokKey)
	masked.CustomKey = utils.MaskSecret(settings.CustomKey)
	return &masked
}

// ApplySettingsUpdate copies the non-nil fields of req into settings.
// A key that comes back masked is the client echoing what Get returned and is ignored.
func ApplySettingsUpdate(settings *models.SystemSettings, req *models.UpdateSettingsRequest) {
	setSecret(&settings.OpenAIKey, req.OpenAIKey)
	setSecret(&settings.YouTubeKey, req.YouTubeKey)
	setSecret(&settings.TikTokKey, req.TikTokKey)
	setSecret(&settings.FacebookKey, req.FacebookKey)
	setSecret(&settings.GeminiKey, req.GeminiKey)
	setSecret(&settings.GrokKey, req.GrokKey)
	setSecret(&settings.CustomKey, req.CustomKey)

	setString(&settings.ContentTone, req.ContentTone)
	setString(&settings.ContentLength, req.ContentLength)
	setString(&settings.BrandName, req.BrandName)
	setString(&settings.VideoResolution, req.VideoResolution)
	setString(&settings.VideoLanguage, req.VideoLanguage)
	setString(&settings.Font, req.Font)
	setString(&settings.PrimaryColor, req.PrimaryColor)
	setString(&settings.BackgroundStyle, req.BackgroundStyle)
	setString(&settings.AIProvider, req.AIProvider)
	setString(&settings.CustomBaseURL, req.CustomBaseURL)
	setString(&settings.CustomModel, req.CustomModel)

	if req.TargetKeywords != nil {
		keywords := make([]string, 0, len(req.TargetKeywords))
		for _, keyword := range req.TargetKeywords {
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		settings.TargetKeywords = keywords
	}
}

func setSecret(dst *string, value *string) {
	if value == nil || utils.IsMasked(*value) {
		return
	}
	*dst = strings.TrimSpace(*value)
}

func setString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}
