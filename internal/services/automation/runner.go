// Package automation runs the unattended content pipeline: pick a niche,
// type, platform and topic, generate text and media, and store the result.
package automation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/assets"
	"github.com/onegreenvn/autocontent-backend/internal/services/contentgen"
)

// Defaults used when the config lists are empty
const (
	DefaultNiche    = "Technology"
	DefaultType     = models.ContentTypeVideo
	DefaultPlatform = "youtube"
)

// Store is the persistence the runner needs
type Store interface {
	GetSettings() (*models.SystemSettings, error)
	GetAutomationConfig() (*models.AutomationConfig, error)
	AddContent(item *models.ContentItem) error
	AddActivity(activityType, title, description string) error
}

// ContentGenerator produces text content
type ContentGenerator interface {
	Generate(ctx context.Context, req contentgen.ContentRequest, legacyKey string, prefs contentgen.ContentPreferences) contentgen.GeneratedContent
}

// AssetGenerator produces media for generated content
type AssetGenerator interface {
	GenerateAsset(ctx context.Context, req assets.AssetRequest) assets.GenerationResult
}

// RunResult describes one completed pipeline run
type RunResult struct {
	Item             *models.ContentItem `json:"generated"`
	Topic            string              `json:"topic"`
	ActivityRecorded bool                `json:"activity_recorded"`
}

// Runner executes a single automation run
type Runner struct {
	store   Store
	content ContentGenerator
	assets  AssetGenerator

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRunner creates a runner. A nil rnd uses a time-seeded source.
func NewRunner(store Store, content ContentGenerator, assetGen AssetGenerator, rnd *rand.Rand) *Runner {
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return &Runner{store: store, content: content, assets: assetGen, rnd: rnd}
}

// ValidateProvider checks that the selected provider has the credentials it needs
func ValidateProvider(settings *models.SystemSettings) error {
	provider := settings.AIProvider
	if provider == "" {
		provider = models.ProviderGemini
	}

	switch provider {
	case models.ProviderGemini:
		if strings.TrimSpace(settings.GeminiKey) == "" {
			return &ValidationError{Provider: provider, Message: "Gemini API Key is required for automation"}
		}
	case models.ProviderOpenAI:
		if strings.TrimSpace(settings.OpenAIKey) == "" {
			return &ValidationError{Provider: provider, Message: "OpenAI API Key is required for automation"}
		}
	case models.ProviderCustom:
		if strings.TrimSpace(settings.CustomBaseURL) == "" {
			return &ValidationError{Provider: provider, Message: "Custom Base URL is required for automation"}
		}
	}
	return nil
}

// RunOnce performs one pipeline run. Configuration problems are returned as
// *ValidationError before any generation is attempted.
func (r *Runner) RunOnce(ctx context.Context) (*RunResult, error) {
	cfg, err := r.store.GetAutomationConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load automation config: %w", err)
	}

	niche := r.pick(cfg.Niches, DefaultNiche)
	contentType := r.pick(cfg.Types, DefaultType)
	platform := r.pick(cfg.Platforms, DefaultPlatform)

	settings, err := r.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := ValidateProvider(settings); err != nil {
		return nil, err
	}

	topic := r.pick(TopicsFor(niche), contentgen.DefaultTopic)
	req := contentgen.ContentRequest{
		Niche:       niche,
		Style:       cfg.Style,
		Platform:    "all",
		Type:        contentType,
		CustomTopic: topic,
	}

	logrus.Infof("Automation run: niche=%s type=%s platform=%s topic=%q", niche, contentType, platform, topic)

	generated := r.content.Generate(ctx, req, settings.GeminiKey, PreferencesFromSettings(settings))

	var asset *assets.GenerationResult
	if r.assets != nil {
		result := r.assets.GenerateAsset(ctx, AssetRequestFor(settings, req, platform, generated))
		asset = &result
	}

	item := BuildContentItem(req, platform, generated, asset)
	if err := r.store.AddContent(item); err != nil {
		return nil, fmt.Errorf("failed to save generated content: %w", err)
	}

	description := fmt.Sprintf("Generated %s \"%s\" with custom tone & branding.", strings.ToUpper(contentType), item.Title)
	recorded := true
	if err := r.store.AddActivity(models.ActivityAutomation, "Pipeline Run Complete", description); err != nil {
		logrus.Warnf("Failed to record pipeline run activity for %q: %v", item.Title, err)
		recorded = false
	}

	return &RunResult{Item: item, Topic: topic, ActivityRecorded: recorded}, nil
}

func (r *Runner) pick(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if v := values[r.rnd.IntN(len(values))]; v != "" {
		return v
	}
	return fallback
}
