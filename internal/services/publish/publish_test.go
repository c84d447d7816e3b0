package publish

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

type fakeStore struct {
	items      map[string]*models.ContentItem
	statuses   []string
	activities []models.ActivityLog
	schedules  []models.ScheduledPost
	updates    map[string][2]string
}

func newFakeStore(items ...*models.ContentItem) *fakeStore {
	f := &fakeStore{items: map[string]*models.ContentItem{}, updates: map[string][2]string{}}
	for _, item := range items {
		f.items[item.ID] = item
	}
	return f
}

func (f *fakeStore) GetContent(id string) (*models.ContentItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("content %s: %w", id, ErrContentNotFound)
	}
	copied := *item
	return &copied, nil
}

func (f *fakeStore) UpdateContent(item *models.ContentItem) error {
	copied := *item
	f.items[item.ID] = &copied
	f.statuses = append(f.statuses, item.Status)
	return nil
}

func (f *fakeStore) AddActivity(activityType, title, description string) error {
	f.activities = append(f.activities, models.ActivityLog{Type: activityType, Title: title, Description: description})
	return nil
}

func (f *fakeStore) ListDueSchedules(now time.Time) ([]models.ScheduledPost, error) {
	var due []models.ScheduledPost
	for _, post := range f.schedules {
		if post.Status == models.ScheduleStatusPending && !post.ScheduledAt.After(now) {
			due = append(due, post)
		}
	}
	return due, nil
}

func (f *fakeStore) UpdateScheduleStatus(id, status, message string) error {
	f.updates[id] = [2]string{status, message}
	return nil
}

type fixedClient struct {
	result models.PublishResult
	err    error
}

func (c fixedClient) SimulatePublish(ctx context.Context, platform string) (models.PublishResult, error) {
	return c.result, c.err
}

func TestSimulatePublishOutcomes(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewPCG(3, 4)), 0)
	platforms := []string{"youtube", "tiktok", "facebook", "linkedin"}

	successes := 0
	for i := 0; i < 400; i++ {
		platform := platforms[i%len(platforms)]
		result, err := sim.SimulatePublish(context.Background(), platform)
		if err != nil {
			t.Fatalf("SimulatePublish returned error: %v", err)
		}
		if result.Success {
			successes++
			prefix := PostURLPrefix(platform)
			if !strings.HasPrefix(result.URL, prefix) || len(result.URL) != len(prefix)+postIDLength {
				t.Fatalf("unexpected url %q", result.URL)
			}
			if !strings.HasPrefix(result.Message, "Successfully published to ") {
				t.Fatalf("unexpected message %q", result.Message)
			}
		} else {
			if result.URL != "" {
				t.Fatalf("failed publish should have no url, got %q", result.URL)
			}
			if result.Message != strings.ToUpper(platform)+" API error: Internal Server Error." {
				t.Fatalf("unexpected failure message %q", result.Message)
			}
		}
	}
	if successes < 320 || successes == 400 {
		t.Fatalf("success count %d far from a 90%% rate", successes)
	}
}

func TestSimulatePublishTitleCase(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewPCG(1, 1)), 0)
	for i := 0; i < 50; i++ {
		result, _ := sim.SimulatePublish(context.Background(), "tiktok")
		if result.Success {
			if result.Message != "Successfully published to Tiktok!" {
				t.Fatalf("unexpected message %q", result.Message)
			}
			return
		}
	}
	t.Fatal("expected at least one success")
}

func TestSimulatePublishHonoursContext(t *testing.T) {
	sim := NewSimulator(nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := sim.SimulatePublish(ctx, "youtube"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPostURLPrefix(t *testing.T) {
	tests := map[string]string{
		"youtube":  "https://youtube.com/watch?v=",
		"tiktok":   "https://tiktok.com/@autocontent/video/",
		"facebook": "https://facebook.com/autocontent/posts/",
		"threads":  "https://social.com/post/",
	}
	for platform, want := range tests {
		if got := PostURLPrefix(platform); got != want {
			t.Errorf("%s: got %q, want %q", platform, got, want)
		}
	}
}

func TestPublishContent(t *testing.T) {
	tests := []struct {
		name         string
		client       fixedClient
		wantStatuses []string
		wantLast     string
		wantErr      bool
	}{
		{
			name:         "success",
			client:       fixedClient{result: models.PublishResult{Success: true, URL: "https://youtube.com/watch?v=abc", Message: "ok"}},
			wantStatuses: []string{models.ContentStatusPublishing, models.ContentStatusPublished},
			wantLast:     "Published to YOUTUBE",
		},
		{
			name:         "platform failure",
			client:       fixedClient{result: models.PublishResult{Success: false, Message: "YOUTUBE API error: Internal Server Error."}},
			wantStatuses: []string{models.ContentStatusPublishing, models.ContentStatusFailed},
			wantLast:     "Publish Failed",
		},
		{
			name:         "interrupted",
			client:       fixedClient{err: context.DeadlineExceeded},
			wantStatuses: []string{models.ContentStatusPublishing, models.ContentStatusFailed},
			wantLast:     "Publishing Started",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(&models.ContentItem{ID: "c1", Title: "My Video", Status: models.ContentStatusReady})
			p := NewPublisher(store, tt.client)

			result, err := p.PublishContent(context.Background(), "c1", "youtube")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && result == nil {
				t.Fatal("expected a result")
			}
			if strings.Join(store.statuses, ",") != strings.Join(tt.wantStatuses, ",") {
				t.Fatalf("statuses = %v, want %v", store.statuses, tt.wantStatuses)
			}
			last := store.activities[len(store.activities)-1]
			if last.Title != tt.wantLast {
				t.Fatalf("last activity = %q, want %q", last.Title, tt.wantLast)
			}
			if store.activities[0].Description != `"My Video" is being sent to youtube...` {
				t.Fatalf("unexpected start description %q", store.activities[0].Description)
			}
		})
	}
}

func TestPublishContentSetsPublishedFields(t *testing.T) {
	store := newFakeStore(&models.ContentItem{ID: "c1", Title: "T"})
	p := NewPublisher(store, fixedClient{result: models.PublishResult{Success: true, URL: "https://tiktok.com/@autocontent/video/x"}})
	fixed := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	if _, err := p.PublishContent(context.Background(), "c1", "tiktok"); err != nil {
		t.Fatalf("PublishContent returned error: %v", err)
	}
	item := store.items["c1"]
	if item.PublishedURL != "https://tiktok.com/@autocontent/video/x" || item.PublishedAt == nil || !item.PublishedAt.Equal(fixed) {
		t.Fatalf("unexpected item %+v", item)
	}
	if store.activities[1].Description != `"T" is now live!` {
		t.Fatalf("unexpected description %q", store.activities[1].Description)
	}
}

func TestPublishContentNotFound(t *testing.T) {
	p := NewPublisher(newFakeStore(), fixedClient{})
	if _, err := p.PublishContent(context.Background(), "missing", "youtube"); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

func TestDispatchDue(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore(
		&models.ContentItem{ID: "c1", Title: "one"},
		&models.ContentItem{ID: "c2", Title: "two"},
	)
	store.schedules = []models.ScheduledPost{
		{ID: "s1", ContentID: "c1", Platform: "youtube", ScheduledAt: now.Add(-time.Hour), Status: models.ScheduleStatusPending},
		{ID: "s2", ContentID: "c2", Platform: "tiktok", ScheduledAt: now.Add(time.Hour), Status: models.ScheduleStatusPending},
		{ID: "s3", ContentID: "missing", Platform: "facebook", ScheduledAt: now.Add(-time.Minute), Status: models.ScheduleStatusPending},
		{ID: "s4", ContentID: "c2", Platform: "tiktok", ScheduledAt: now.Add(-time.Minute), Status: models.ScheduleStatusCancelled},
	}

	publisher := NewPublisher(store, fixedClient{result: models.PublishResult{Success: true, URL: "https://youtube.com/watch?v=1"}})
	d := NewDispatcher(store, publisher, time.Minute)
	d.now = func() time.Time { return now }

	if got := d.DispatchDue(context.Background()); got != 2 {
		t.Fatalf("processed %d, want 2", got)
	}
	if store.updates["s1"][0] != models.ScheduleStatusPublished || store.updates["s1"][1] != "https://youtube.com/watch?v=1" {
		t.Fatalf("unexpected s1 update %v", store.updates["s1"])
	}
	if store.updates["s3"][0] != models.ScheduleStatusFailed {
		t.Fatalf("missing content should fail, got %v", store.updates["s3"])
	}
	if _, ok := store.updates["s2"]; ok {
		t.Fatal("future post should not be dispatched")
	}
	if _, ok := store.updates["s4"]; ok {
		t.Fatal("cancelled post should not be dispatched")
	}
}
