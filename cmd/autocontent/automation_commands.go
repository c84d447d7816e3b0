package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/automation"
)

func newAutomationCommand(ctx *commandContext) *cobra.Command {
	automationCmd := &cobra.Command{
		Use:   "automation",
		Short: "Inspect and run the automation pipeline",
	}

	automationCmd.AddCommand(newAutomationStatusCommand(ctx))
	automationCmd.AddCommand(newAutomationRunCommand(ctx))

	return automationCmd
}

func newAutomationStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the automation config",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			cfg, err := a.Services.Automation.Get()
			if err != nil {
				return err
			}
			printAutomationStatus(cmd.OutOrStdout(), cfg, time.Now())
			return nil
		},
	}
}

func newAutomationRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline once, regardless of the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			result, err := a.Scheduler.Execute(cmd.Context(), automation.TriggerCLI)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Topic: %s\n", result.Topic)
			printContentTable(out, []models.ContentItem{*result.Item}, time.Now())
			return nil
		},
	}
}

func automationRows(cfg *models.AutomationConfig, now time.Time) [][]string {
	state := "disabled"
	if cfg.Enabled {
		state = "enabled"
	}
	return [][]string{
		{"State", state},
		{"Frequency", cfg.Frequency},
		{"Niches", strings.Join(cfg.Niches, ", ")},
		{"Style", cfg.Style},
		{"Types", strings.Join(cfg.Types, ", ")},
		{"Platforms", strings.Join(cfg.Platforms, ", ")},
		{"Last run", relTime(cfg.LastRunAt, now)},
		{"Next run", relTime(cfg.NextRun, now)},
	}
}

func printAutomationStatus(out io.Writer, cfg *models.AutomationConfig, now time.Time) {
	fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, automationRows(cfg, now), nil))
}

func relTime(t *time.Time, now time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}
	return humanize.RelTime(*t, now, "ago", "from now")
}
