package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

const titleWidth = 48

func newContentCommand(ctx *commandContext) *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Browse and export the content library",
	}

	contentCmd.AddCommand(newContentListCommand(ctx))
	contentCmd.AddCommand(newContentShowCommand(ctx))
	contentCmd.AddCommand(newContentExportCommand(ctx))

	return contentCmd
}

func newContentListCommand(ctx *commandContext) *cobra.Command {
	var filter models.ContentFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			items, pagination, err := a.Services.Content.List(filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printContentTable(out, items, time.Now())
			fmt.Fprintf(out, "Page %d of %d (%d items)\n", pagination.Page, pagination.TotalPages, pagination.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&filter.Type, "type", "", "Filter by content type")
	cmd.Flags().StringVar(&filter.Platform, "platform", "", "Filter by platform")
	cmd.Flags().StringVar(&filter.Niche, "niche", "", "Filter by niche")
	cmd.Flags().IntVar(&filter.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&filter.PageSize, "page-size", models.DefaultContentPageSize, "Items per page")

	return cmd
}

func newContentShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			item, err := a.Services.Content.Get(args[0])
			if err != nil {
				return fmt.Errorf("content %s: %w", args[0], err)
			}
			printContentDetail(cmd.OutOrStdout(), item)
			return nil
		},
	}
}

func newContentExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the whole library to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			items, err := a.Services.Content.ListAll()
			if err != nil {
				return err
			}
			result, err := a.Services.Exporter.ExportContentToExcel(items)
			if err != nil {
				return err
			}
			path, err := a.Services.Exporter.FilePath(result.Filename)
			if err != nil {
				return err
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s\n", len(items), abs)
			return nil
		},
	}
}

func contentRows(items []models.ContentItem, now time.Time) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			text.Trim(item.Title, titleWidth),
			item.Type,
			item.Platform,
			item.Status,
			humanize.RelTime(item.CreatedAt, now, "ago", "from now"),
		})
	}
	return rows
}

func printContentTable(out io.Writer, items []models.ContentItem, now time.Time) {
	if len(items) == 0 {
		fmt.Fprintln(out, "No content found")
		return
	}
	headers := []string{"ID", "Title", "Type", "Platform", "Status", "Created"}
	fmt.Fprintln(out, renderTable(headers, contentRows(items, now), nil))
}

func printContentDetail(out io.Writer, item *models.ContentItem) {
	rows := [][]string{
		{"ID", item.ID},
		{"Title", item.Title},
		{"Niche", item.Niche},
		{"Style", item.Style},
		{"Type", item.Type},
		{"Platform", item.Platform},
		{"Status", item.Status},
		{"Hashtags", fmt.Sprint([]string(item.Hashtags))},
		{"Image", item.ImageURL},
		{"Video", item.VideoURL},
		{"Duration", durationLabel(item.Duration)},
		{"File size", item.FileSize},
		{"Published", item.PublishedURL},
	}
	fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil))
	if item.Description != "" {
		fmt.Fprintf(out, "\n%s\n", item.Description)
	}
}

func durationLabel(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return strconv.Itoa(seconds) + "s"
}
