package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/assets"
	"github.com/onegreenvn/autocontent-backend/internal/services/contentgen"
)

type memContent struct {
	items     []*models.ContentItem
	failAfter int // Create fails once this many items are stored; 0 never fails
}

func (m *memContent) Create(item *models.ContentItem) error {
	if m.failAfter > 0 && len(m.items) >= m.failAfter {
		return errors.New("insert failed")
	}
	m.items = append(m.items, item)
	return nil
}

func (m *memContent) GetByID(id string) (*models.ContentItem, error) { return nil, nil }

func (m *memContent) Update(item *models.ContentItem) error { return nil }

type failingRecorder struct {
	calls int
}

func (f *failingRecorder) Record(activityType, title, description string) (*models.ActivityLog, error) {
	f.calls++
	return nil, errors.New("activity table locked")
}

func TestAddContentKeepsSavedItemWhenActivityFails(t *testing.T) {
	repo := &memContent{}
	recorder := &failingRecorder{}
	store := &Store{contentRepo: repo, activity: recorder}

	item := &models.ContentItem{Title: "AI Agents", Type: models.ContentTypeVideo}
	if err := store.AddContent(item); err != nil {
		t.Fatalf("AddContent() error = %v, want nil once the item is saved", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("stored %d items, want 1", len(repo.items))
	}
	if recorder.calls != 1 {
		t.Errorf("activity recorded %d times, want 1", recorder.calls)
	}
}

func TestAddContentReturnsInsertError(t *testing.T) {
	store := &Store{contentRepo: &memContent{failAfter: 1}, activity: &failingRecorder{}}
	_ = store.AddContent(&models.ContentItem{Title: "first"})

	err := store.AddContent(&models.ContentItem{Title: "second"})
	if err == nil || !strings.Contains(err.Error(), "failed to create content") {
		t.Fatalf("AddContent() error = %v", err)
	}
}

type stubBatch struct{}

func (stubBatch) GenerateBatch(ctx context.Context, req contentgen.ContentRequest, count int, legacyKey string, prefs contentgen.ContentPreferences) []contentgen.GeneratedContent {
	out := make([]contentgen.GeneratedContent, count)
	for i := range out {
		out[i] = contentgen.Fallback(req, prefs)
	}
	return out
}

type stubAssets struct{}

func (stubAssets) GenerateAsset(ctx context.Context, req assets.AssetRequest) assets.GenerationResult {
	return assets.GenerationResult{URL: "https://example.com/a.mp4", Resolution: "1920x1080"}
}

type memContentStore struct {
	repo *memContent
}

func (m *memContentStore) GetSettings() (*models.SystemSettings, error) {
	return models.DefaultSystemSettings(), nil
}

func (m *memContentStore) AddContent(item *models.ContentItem) error {
	return m.repo.Create(item)
}

func TestGenerateReturnsItemsSavedBeforeFailure(t *testing.T) {
	repo := &memContent{failAfter: 2}
	svc := &ContentService{store: &memContentStore{repo: repo}, generator: stubBatch{}, assets: stubAssets{}}

	items, err := svc.Generate(context.Background(), &models.GenerateContentRequest{
		Niche: "Technology", Style: "educational", Platform: "youtube", Type: "video", Count: 3,
	})
	if err == nil {
		t.Fatal("Generate() error = nil, want the insert failure")
	}
	if !strings.Contains(err.Error(), "failed to save item 3 of 3") {
		t.Errorf("error = %q, want position context", err)
	}
	if len(items) != 2 {
		t.Errorf("returned %d items, want the 2 already saved", len(items))
	}
}

func TestRecordAfterCommitSwallowsError(t *testing.T) {
	recorder := &failingRecorder{}
	recordAfterCommit(recorder, models.ActivityAutomation, "Automation Enabled", "Full pipeline automation is now running")
	if recorder.calls != 1 {
		t.Errorf("calls = %d, want 1", recorder.calls)
	}
}
