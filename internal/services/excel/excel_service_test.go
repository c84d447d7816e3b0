package excel

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

func TestColumnToLetter(t *testing.T) {
	tests := map[int]string{1: "A", 17: "Q", 26: "Z", 27: "AA", 52: "AZ", 703: "AAA"}
	for in, want := range tests {
		if got := columnToLetter(in); got != want {
			t.Errorf("columnToLetter(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestExportContentToExcel(t *testing.T) {
	dir := t.TempDir()
	s := NewExcelService(dir)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }

	created := time.Date(2026, 1, 21, 10, 30, 0, 0, time.UTC)
	items := []models.ContentItem{
		{ID: "c1", Title: "AI Agents Explained", Type: "video", Platform: "youtube", Status: models.ContentStatusReady,
			Hashtags: []string{"#ai", "#tech"}, Duration: 90, CreatedAt: created},
		{ID: "c2", Title: "Morning Routine", Type: "photo", Platform: "tiktok", Status: models.ContentStatusPublished,
			PublishedURL: "https://tiktok.com/@autocontent/video/abc", CreatedAt: created},
		{ID: "c3", Title: "Budgeting Tips", Type: "text", Platform: "facebook", Status: models.ContentStatusReady, CreatedAt: created},
	}

	result, err := s.ExportContentToExcel(items)
	if err != nil {
		t.Fatalf("ExportContentToExcel: %v", err)
	}
	if result.Filename != "content_library_1700000000.xlsx" {
		t.Errorf("Filename = %q", result.Filename)
	}

	path, err := s.FilePath(result.Filename)
	if err != nil {
		t.Fatalf("FilePath: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	cells := map[string]string{
		"A1": "id",
		"B2": "AI Agents Explained",
		"H2": "#ai #tech",
		"L2": "90",
		"G3": models.ContentStatusPublished,
		"O3": "https://tiktok.com/@autocontent/video/abc",
		"P4": "2026-01-21T10:30:00Z",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(contentSheetName, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	rows, err := f.GetRows(summarySheetName)
	if err != nil {
		t.Fatalf("GetRows(summary): %v", err)
	}
	want := [][]string{{"status", "count"}, {"published", "1"}, {"ready", "2"}, {"total", "3"}}
	if len(rows) != len(want) {
		t.Fatalf("summary rows = %v, want %v", rows, want)
	}
	for i := range want {
		if rows[i][0] != want[i][0] || rows[i][1] != want[i][1] {
			t.Errorf("summary row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestFilePathRejectsTraversal(t *testing.T) {
	s := NewExcelService(t.TempDir())
	for _, name := range []string{"", "../secret.xlsx", filepath.Join("sub", "x.xlsx"), "notes.txt"} {
		if _, err := s.FilePath(name); !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("FilePath(%q) err = %v, want ErrInvalidFilename", name, err)
		}
	}
	if _, err := s.FilePath("missing.xlsx"); err == nil || errors.Is(err, ErrInvalidFilename) {
		t.Errorf("FilePath(missing) err = %v, want not-exist error", err)
	}
}
