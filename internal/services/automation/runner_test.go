package automation

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/assets"
	"github.com/onegreenvn/autocontent-backend/internal/services/contentgen"
)

type fakeStore struct {
	mu          sync.Mutex
	settings    *models.SystemSettings
	config      *models.AutomationConfig
	content     []*models.ContentItem
	activities  []models.ActivityLog
	addErr      error
	activityErr error
	lastRun     time.Time
	nextRun     time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		settings: models.DefaultSystemSettings(),
		config:   models.DefaultAutomationConfig(),
	}
}

func (f *fakeStore) GetSettings() (*models.SystemSettings, error) { return f.settings, nil }

func (f *fakeStore) GetAutomationConfig() (*models.AutomationConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cfg := *f.config
	return &cfg, nil
}

func (f *fakeStore) AddContent(item *models.ContentItem) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = append(f.content, item)
	return nil
}

func (f *fakeStore) AddActivity(activityType, title, description string) error {
	if f.activityErr != nil {
		return f.activityErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activities = append(f.activities, models.ActivityLog{Type: activityType, Title: title, Description: description})
	return nil
}

func (f *fakeStore) SetAutomationRun(lastRun, nextRun time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastRun, f.nextRun = lastRun, nextRun
	f.config.NextRun = &nextRun
	f.config.LastRunAt = &lastRun
	return nil
}

type countingGenerator struct {
	calls atomic.Int32
	last  contentgen.ContentRequest
}

func (c *countingGenerator) Generate(ctx context.Context, req contentgen.ContentRequest, legacyKey string, prefs contentgen.ContentPreferences) contentgen.GeneratedContent {
	c.calls.Add(1)
	c.last = req
	return contentgen.Fallback(req, prefs)
}

type stubAssets struct {
	last assets.AssetRequest
}

func (s *stubAssets) GenerateAsset(ctx context.Context, req assets.AssetRequest) assets.GenerationResult {
	s.last = req
	return assets.GenerationResult{URL: "https://media/1.mp4", ThumbnailURL: "https://media/1.jpg", Duration: 42, Resolution: "1920x1080", FileSize: "12 MB"}
}

func seededRand() *rand.Rand { return rand.New(rand.NewPCG(7, 11)) }

func TestRunOnceValidation(t *testing.T) {
	tests := []struct {
		name     string
		settings models.SystemSettings
		message  string
	}{
		{name: "openai without key", settings: models.SystemSettings{AIProvider: "openai", GeminiKey: "g"}, message: "OpenAI API Key is required for automation"},
		{name: "gemini without key", settings: models.SystemSettings{AIProvider: "gemini"}, message: "Gemini API Key is required for automation"},
		{name: "empty provider means gemini", settings: models.SystemSettings{}, message: "Gemini API Key is required for automation"},
		{name: "custom without base url", settings: models.SystemSettings{AIProvider: "custom", CustomKey: "k"}, message: "Custom Base URL is required for automation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			settings := tt.settings
			store.settings = &settings
			gen := &countingGenerator{}

			result, err := NewRunner(store, gen, &stubAssets{}, seededRand()).RunOnce(context.Background())

			if result != nil {
				t.Fatalf("expected no result, got %+v", result)
			}
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected validation failure, got %v", err)
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) || validationErr.Message != tt.message {
				t.Fatalf("unexpected error %v", err)
			}
			if gen.calls.Load() != 0 {
				t.Fatalf("generator called %d times", gen.calls.Load())
			}
			if len(store.content) != 0 || len(store.activities) != 0 {
				t.Fatal("nothing should be stored on validation failure")
			}
		})
	}
}

func TestRunOnceValidationMakesNoNetworkCalls(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	store := newFakeStore()
	store.settings.AIProvider = "openai"
	store.settings.OpenAIKey = ""
	gen := contentgen.NewGenerator(contentgen.WithOpenAIBaseURL(server.URL))

	_, err := NewRunner(store, gen, nil, seededRand()).RunOnce(context.Background())
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected 0 provider calls, got %d", hits.Load())
	}
}

func TestRunOnceStoresReadyItem(t *testing.T) {
	store := newFakeStore()
	store.settings.GeminiKey = "gem"
	store.settings.GrokKey = "xai"
	store.config.Niches = []string{"Finance"}
	store.config.Types = []string{"shorts"}
	store.config.Platforms = []string{"tiktok"}
	store.config.Style = "storytelling"
	gen := &countingGenerator{}
	media := &stubAssets{}

	result, err := NewRunner(store, gen, media, seededRand()).RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}

	if gen.last.Platform != "all" || gen.last.Niche != "Finance" || gen.last.Type != "shorts" || gen.last.Style != "storytelling" {
		t.Fatalf("unexpected generator request %+v", gen.last)
	}
	if !slices.Contains(TopicsFor("Finance"), gen.last.CustomTopic) {
		t.Fatalf("topic %q not from the Finance pool", gen.last.CustomTopic)
	}
	if media.last.GrokKey != "xai" || media.last.Platform != "tiktok" {
		t.Fatalf("unexpected asset request %+v", media.last)
	}

	item := result.Item
	if item.Status != models.ContentStatusReady || item.Platform != "tiktok" || item.Type != "shorts" {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.VideoURL != "https://media/1.mp4" || item.ThumbnailURL != "https://media/1.jpg" || item.Duration != 42 {
		t.Fatalf("asset not applied: %+v", item)
	}
	if !result.ActivityRecorded || len(store.activities) != 1 {
		t.Fatalf("expected one activity, got %v", store.activities)
	}
	act := store.activities[0]
	if act.Type != models.ActivityAutomation || act.Title != "Pipeline Run Complete" {
		t.Fatalf("unexpected activity %+v", act)
	}
	if !strings.HasPrefix(act.Description, `Generated SHORTS "`) {
		t.Fatalf("unexpected activity description %q", act.Description)
	}
}

func TestRunOnceEmptyListsUseDefaults(t *testing.T) {
	store := newFakeStore()
	store.settings.GeminiKey = "gem"
	store.config.Niches = nil
	store.config.Types = nil
	store.config.Platforms = nil
	gen := &countingGenerator{}

	result, err := NewRunner(store, gen, nil, seededRand()).RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}
	if result.Item.Niche != DefaultNiche || result.Item.Type != DefaultType || result.Item.Platform != DefaultPlatform {
		t.Fatalf("unexpected defaults %+v", result.Item)
	}
}

func TestRunOnceStoreError(t *testing.T) {
	store := newFakeStore()
	store.settings.GeminiKey = "gem"
	store.addErr = errors.New("db down")

	_, err := NewRunner(store, &countingGenerator{}, nil, seededRand()).RunOnce(context.Background())
	if err == nil || errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestRunOnceActivityFailureKeepsResult(t *testing.T) {
	store := newFakeStore()
	store.settings.GeminiKey = "gem"
	store.activityErr = errors.New("activity table locked")

	result, err := NewRunner(store, &countingGenerator{}, nil, seededRand()).RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce returned error %v for content that was saved", err)
	}
	if len(store.content) != 1 || result.Item != store.content[0] {
		t.Fatalf("saved item not returned: %+v", result)
	}
	if result.ActivityRecorded {
		t.Fatal("ActivityRecorded should be false when the activity write fails")
	}
}

func TestTopicsForUnknownNiche(t *testing.T) {
	got := TopicsFor("Pottery")
	want := []string{"Interesting Trends", "Viral Topics", "Breaking News"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if len(TopicsFor("Technology")) != 5 {
		t.Fatal("expected 5 technology topics")
	}
}

func TestPreferencesFromSettings(t *testing.T) {
	s := models.DefaultSystemSettings()
	s.TargetKeywords = []string{"ai"}
	s.CustomKey = ""

	prefs := PreferencesFromSettings(s)
	if prefs.CustomKey == nil || *prefs.CustomKey != "" {
		t.Fatal("custom key should be present even when empty")
	}
	if prefs.Language != "English" || prefs.Tone != s.ContentTone || !slices.Equal(prefs.TargetKeywords, []string{"ai"}) {
		t.Fatalf("unexpected preferences %+v", prefs)
	}
}

func TestBuildContentItemPhoto(t *testing.T) {
	req := contentgen.ContentRequest{Niche: "Travel", Style: "storytelling", Type: "photo"}
	gen := contentgen.GeneratedContent{Title: "T", ImageURL: "https://picsum.photos/seed/x/1080/1080"}

	item := BuildContentItem(req, "facebook", gen, &assets.GenerationResult{URL: "https://img/1.png", ThumbnailURL: "https://img/1.png"})
	if item.ImageURL != "https://img/1.png" || item.VideoURL != "" {
		t.Fatalf("unexpected urls %+v", item)
	}
	if item.Hashtags == nil {
		t.Fatal("hashtags should never be nil")
	}

	item = BuildContentItem(req, "facebook", gen, nil)
	if item.ImageURL != gen.ImageURL {
		t.Fatalf("generated image url should be kept without an asset, got %q", item.ImageURL)
	}
}
