package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services"
)

var (
	generatePlatforms = []string{"youtube", "tiktok", "facebook", "all"}
	generateTypes     = []string{models.ContentTypeVideo, models.ContentTypePhoto, models.ContentTypeShorts, models.ContentTypeText}
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	req := models.GenerateContentRequest{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of content and store it in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGenerateRequest(&req); err != nil {
				return err
			}

			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			items, err := a.Services.Content.Generate(cmd.Context(), &req)
			if err != nil {
				return err
			}

			stored := make([]models.ContentItem, 0, len(items))
			for _, item := range items {
				stored = append(stored, *item)
			}
			printContentTable(cmd.OutOrStdout(), stored, time.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Niche, "niche", "Technology", "Content niche")
	cmd.Flags().StringVar(&req.Style, "style", "educational", "Writing style")
	cmd.Flags().StringVar(&req.Platform, "platform", "youtube", "Target platform (youtube, tiktok, facebook, all)")
	cmd.Flags().StringVar(&req.Type, "type", models.ContentTypeVideo, "Content type (video, photo, shorts, text)")
	cmd.Flags().StringVar(&req.CustomTopic, "topic", "", "Custom topic")
	cmd.Flags().IntVarP(&req.Count, "count", "n", 1, fmt.Sprintf("Number of items (1-%d)", services.MaxBatchCount))

	return cmd
}

func validateGenerateRequest(req *models.GenerateContentRequest) error {
	if req.Niche == "" || req.Style == "" {
		return fmt.Errorf("niche and style are required")
	}
	if !slices.Contains(generatePlatforms, req.Platform) {
		return fmt.Errorf("unknown platform %q", req.Platform)
	}
	if !slices.Contains(generateTypes, req.Type) {
		return fmt.Errorf("unknown content type %q", req.Type)
	}
	req.Count = services.NormalizeCount(req.Count)
	return nil
}
