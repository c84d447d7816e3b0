package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services"
)

func TestValidateGenerateRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       models.GenerateContentRequest
		wantErr   bool
		wantCount int
	}{
		{
			name:      "defaults",
			req:       models.GenerateContentRequest{Niche: "Tech", Style: "fun", Platform: "youtube", Type: "video"},
			wantCount: 1,
		},
		{
			name:      "count clamped",
			req:       models.GenerateContentRequest{Niche: "Tech", Style: "fun", Platform: "all", Type: "text", Count: 50},
			wantCount: services.MaxBatchCount,
		},
		{
			name:    "unknown platform",
			req:     models.GenerateContentRequest{Niche: "Tech", Style: "fun", Platform: "myspace", Type: "video"},
			wantErr: true,
		},
		{
			name:    "unknown type",
			req:     models.GenerateContentRequest{Niche: "Tech", Style: "fun", Platform: "tiktok", Type: "podcast"},
			wantErr: true,
		},
		{
			name:    "missing niche",
			req:     models.GenerateContentRequest{Style: "fun", Platform: "tiktok", Type: "video"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := validateGenerateRequest(&req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateGenerateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && req.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", req.Count, tt.wantCount)
			}
		})
	}
}

func TestContentRows(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []models.ContentItem{{
		ID:        "abc",
		Title:     strings.Repeat("x", 80),
		Type:      models.ContentTypePhoto,
		Platform:  "tiktok",
		Status:    models.ContentStatusReady,
		CreatedAt: now.Add(-2 * time.Hour),
	}}

	rows := contentRows(items, now)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if len(row[1]) != titleWidth {
		t.Errorf("title length = %d, want %d", len(row[1]), titleWidth)
	}
	if row[5] != "2 hours ago" {
		t.Errorf("created = %q, want %q", row[5], "2 hours ago")
	}
}

func TestPrintContentTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	printContentTable(&buf, nil, time.Now())
	if got := strings.TrimSpace(buf.String()); got != "No content found" {
		t.Errorf("output = %q", got)
	}
}

func TestAutomationRows(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-time.Hour)
	cfg := &models.AutomationConfig{
		Enabled:   true,
		Niches:    []string{"Tech", "Food"},
		Style:     "educational",
		Platforms: []string{"youtube"},
		Types:     []string{"video"},
		Frequency: "daily",
		LastRunAt: &last,
	}

	got := map[string]string{}
	for _, row := range automationRows(cfg, now) {
		got[row[0]] = row[1]
	}

	want := map[string]string{
		"State":    "enabled",
		"Niches":   "Tech, Food",
		"Last run": "1 hour ago",
		"Next run": "never",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, []columnAlignment{alignLeft, alignRight})
	if !strings.Contains(out, "only") {
		t.Fatalf("render missing cell: %s", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Error("empty headers should render nothing")
	}
}
