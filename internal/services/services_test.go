package services

import (
	"strings"
	"testing"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestMaskSettingsHidesEveryKey(t *testing.T) {
	settings := models.DefaultSystemSettings()
	settings.OpenAIKey = "sk-1234567890abcdef"
	settings.GeminiKey = "AIzaSyExampleKey9876"
	settings.CustomKey = "short"

	masked := MaskSettings(settings)

	if masked.OpenAIKey != "sk-...cdef" {
		t.Errorf("OpenAIKey = %q, want sk-...cdef", masked.OpenAIKey)
	}
	if masked.GeminiKey != "AIz...9876" {
		t.Errorf("GeminiKey = %q, want AIz...9876", masked.GeminiKey)
	}
	if masked.CustomKey != "*****" {
		t.Errorf("CustomKey = %q, want *****", masked.CustomKey)
	}
	if masked.GrokKey != "" {
		t.Errorf("GrokKey = %q, want empty", masked.GrokKey)
	}
	if settings.OpenAIKey != "sk-1234567890abcdef" {
		t.Error("MaskSettings modified the original settings")
	}
}

func TestApplySettingsUpdate(t *testing.T) {
	tests := []struct {
		name  string
		req   models.UpdateSettingsRequest
		check func(t *testing.T, s *models.SystemSettings)
	}{
		{
			name: "masked echo is ignored",
			req:  models.UpdateSettingsRequest{OpenAIKey: strPtr("sk-...cdef")},
			check: func(t *testing.T, s *models.SystemSettings) {
				if s.OpenAIKey != "sk-1234567890abcdef" {
					t.Errorf("OpenAIKey = %q, want unchanged", s.OpenAIKey)
				}
			},
		},
		{
			name: "new key is trimmed",
			req:  models.UpdateSettingsRequest{GeminiKey: strPtr("  new-gemini-key  ")},
			check: func(t *testing.T, s *models.SystemSettings) {
				if s.GeminiKey != "new-gemini-key" {
					t.Errorf("GeminiKey = %q", s.GeminiKey)
				}
			},
		},
		{
			name: "empty key clears",
			req:  models.UpdateSettingsRequest{OpenAIKey: strPtr("")},
			check: func(t *testing.T, s *models.SystemSettings) {
				if s.OpenAIKey != "" {
					t.Errorf("OpenAIKey = %q, want empty", s.OpenAIKey)
				}
			},
		},
		{
			name: "nil fields unchanged",
			req:  models.UpdateSettingsRequest{ContentTone: strPtr("Witty & Casual")},
			check: func(t *testing.T, s *models.SystemSettings) {
				if s.ContentTone != "Witty & Casual" {
					t.Errorf("ContentTone = %q", s.ContentTone)
				}
				if s.BrandName != "AutoContent AI" || s.ContentLength != "medium" {
					t.Errorf("unexpected change: brand=%q length=%q", s.BrandName, s.ContentLength)
				}
			},
		},
		{
			name: "keywords are trimmed and blanks dropped",
			req:  models.UpdateSettingsRequest{TargetKeywords: []string{" ai ", "", "growth"}},
			check: func(t *testing.T, s *models.SystemSettings) {
				got := strings.Join(s.TargetKeywords, ",")
				if got != "ai,growth" {
					t.Errorf("TargetKeywords = %q, want ai,growth", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := models.DefaultSystemSettings()
			settings.OpenAIKey = "sk-1234567890abcdef"
			ApplySettingsUpdate(settings, &tt.req)
			tt.check(t, settings)
		})
	}
}

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		published, total int64
		want             int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := SuccessRate(tt.published, tt.total); got != tt.want {
			t.Errorf("SuccessRate(%d, %d) = %d, want %d", tt.published, tt.total, got, tt.want)
		}
	}
}

func TestNormalizeCount(t *testing.T) {
	tests := map[int]int{-2: 1, 0: 1, 1: 1, 4: 4, 10: 10, 25: MaxBatchCount}
	for in, want := range tests {
		if got := NormalizeCount(in); got != want {
			t.Errorf("NormalizeCount(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestApplyAutomationUpdate(t *testing.T) {
	next := time.Now().Add(time.Hour)
	cfg := models.DefaultAutomationConfig()
	cfg.NextRun = &next

	ApplyAutomationUpdate(cfg, &models.UpdateAutomationRequest{
		Niches:    []string{"Finance"},
		Frequency: strPtr(models.FrequencyHourly),
	})

	if len(cfg.Niches) != 1 || cfg.Niches[0] != "Finance" {
		t.Errorf("Niches = %v", cfg.Niches)
	}
	if cfg.Frequency != models.FrequencyHourly {
		t.Errorf("Frequency = %q", cfg.Frequency)
	}
	if cfg.NextRun != nil {
		t.Error("NextRun should reset when the frequency changes")
	}
	if cfg.Style != "educational" || len(cfg.Platforms) != 3 {
		t.Errorf("unset fields changed: style=%q platforms=%v", cfg.Style, cfg.Platforms)
	}
}

func TestSSEHubBroadcastsToTypeAndAll(t *testing.T) {
	hub := NewSSEHub()
	all := hub.RegisterClient("")
	publishOnly := hub.RegisterClient(models.ActivityPublish)
	generateOnly := hub.RegisterClient(models.ActivityGenerate)
	defer hub.UnregisterClient("", all)
	defer hub.UnregisterClient(models.ActivityPublish, publishOnly)
	defer hub.UnregisterClient(models.ActivityGenerate, generateOnly)

	hub.BroadcastActivity(&models.ActivityLog{ID: "a1", Type: models.ActivityPublish, Title: "Published to TIKTOK"})

	for name, ch := range map[string]chan []byte{"all": all, "publish": publishOnly} {
		select {
		case msg := <-ch:
			if !strings.HasPrefix(string(msg), "event: activity\ndata: ") || !strings.HasSuffix(string(msg), "\n\n") {
				t.Errorf("%s client got malformed event %q", name, msg)
			}
			if !strings.Contains(string(msg), `"title":"Published to TIKTOK"`) {
				t.Errorf("%s client event missing title: %q", name, msg)
			}
		default:
			t.Errorf("%s client received nothing", name)
		}
	}

	select {
	case msg := <-generateOnly:
		t.Errorf("generate client received %q", msg)
	default:
	}

	if got := hub.GetClientCount(AllActivityTypes); got != 1 {
		t.Errorf("GetClientCount(all) = %d, want 1", got)
	}
}
