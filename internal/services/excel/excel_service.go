package excel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	contentSheetName = "Content"
	summarySheetName = "Summary"
)

// ErrInvalidFilename is returned for download names that leave the exports directory
var ErrInvalidFilename = errors.New("invalid export filename")

var contentColumns = []string{
	"id", "title", "type", "platform", "niche", "style", "status",
	"hashtags", "video_url", "image_url", "thumbnail_url",
	"duration", "resolution", "file_size", "published_url",
	"created_at", "published_at",
}

// statusColors fills rows by content status
var statusColors = map[string]string{
	models.ContentStatusReady:      "C6EFCE", // Green
	models.ContentStatusPublished:  "B4C6E7", // Light blue
	models.ContentStatusPublishing: "FFC000", // Orange
	models.ContentStatusGenerating: "FFFF00", // Yellow
	models.ContentStatusFailed:     "D9D9D9", // Gray
}

// Service writes content library exports
type Service struct {
	exportsDir string
	now        func() time.Time
}

// NewExcelService creates a new Excel service instance
func NewExcelService(exportsDir string) *Service {
	if _, err := os.Stat(exportsDir); os.IsNotExist(err) {
		os.MkdirAll(exportsDir, 0755)
	}

	return &Service{
		exportsDir: exportsDir,
		now:        time.Now,
	}
}

// ExportResult contains the result of an export operation
type ExportResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// ExportContentToExcel writes the content items and a per-status summary to a new workbook
func (s *Service) ExportContentToExcel(items []models.ContentItem) (*ExportResult, error) {
	filename := fmt.Sprintf("content_library_%d.xlsx", s.now().Unix())
	filePath := filepath.Join(s.exportsDir, filename)

	f := excelize.NewFile()
	defer f.Close()

	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, contentSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	for i, col := range contentColumns {
		f.SetCellValue(contentSheetName, fmt.Sprintf("%s1", columnToLetter(i+1)), col)
	}
	lastColumn := columnToLetter(len(contentColumns))

	if headerStyle, err := newHeaderStyle(f); err == nil {
		f.SetCellStyle(contentSheetName, "A1", lastColumn+strconv.Itoa(1), headerStyle)
	}

	for i, col := range contentColumns {
		colLetter := columnToLetter(i + 1)
		width := 20.0

		switch col {
		case "id":
			width = 38.0
		case "title":
			width = 45.0
		case "type", "platform", "status", "duration", "resolution", "file_size":
			width = 12.0
		case "hashtags":
			width = 35.0
		case "video_url", "image_url", "thumbnail_url", "published_url":
			width = 50.0
		}

		f.SetColWidth(contentSheetName, colLetter, colLetter, width)
	}

	rowStyles := make(map[string]int, len(statusColors))
	for status, color := range statusColors {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err == nil {
			rowStyles[status] = style
		}
	}

	if len(items) == 0 {
		f.SetCellValue(contentSheetName, "A2", "no content found")
	}

	for j, item := range items {
		row := j + 2
		values := []interface{}{
			item.ID, item.Title, item.Type, item.Platform, item.Niche, item.Style, item.Status,
			strings.Join(item.Hashtags, " "), item.VideoURL, item.ImageURL, item.ThumbnailURL,
			item.Duration, item.Resolution, item.FileSize, item.PublishedURL,
			item.CreatedAt.Format(time.RFC3339), formatOptionalTime(item.PublishedAt),
		}
		for i, value := range values {
			f.SetCellValue(contentSheetName, fmt.Sprintf("%s%d", columnToLetter(i+1), row), value)
		}

		if style, ok := rowStyles[strings.ToLower(item.Status)]; ok {
			f.SetCellStyle(contentSheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastColumn, row), style)
		}
	}

	if err := writeSummary(f, items); err != nil {
		return nil, err
	}

	if err := f.SaveAs(filePath); err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %w", err)
	}

	return &ExportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully exported %d content item(s)", len(items)),
		Filename: filename,
	}, nil
}

// FilePath resolves an export filename inside the exports directory
func (s *Service) FilePath(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || !strings.HasSuffix(filename, ".xlsx") {
		return "", ErrInvalidFilename
	}
	path := filepath.Join(s.exportsDir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("export %s: %w", filename, err)
	}
	return path, nil
}

// writeSummary adds a sheet with item counts per status
func writeSummary(f *excelize.File, items []models.ContentItem) error {
	if _, err := f.NewSheet(summarySheetName); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Status]++
	}
	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	f.SetCellValue(summarySheetName, "A1", "status")
	f.SetCellValue(summarySheetName, "B1", "count")
	if headerStyle, err := newHeaderStyle(f); err == nil {
		f.SetCellStyle(summarySheetName, "A1", "B1", headerStyle)
	}

	row := 2
	for _, status := range statuses {
		f.SetCellValue(summarySheetName, fmt.Sprintf("A%d", row), status)
		f.SetCellValue(summarySheetName, fmt.Sprintf("B%d", row), counts[status])
		row++
	}
	f.SetCellValue(summarySheetName, fmt.Sprintf("A%d", row), "total")
	f.SetCellValue(summarySheetName, fmt.Sprintf("B%d", row), len(items))
	return nil
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
