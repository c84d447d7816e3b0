package services

import (
	"context"
	"fmt"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/automation"
	"gorm.io/gorm"
)

// RunExecutor executes one automation run under the run lock
type RunExecutor interface {
	Execute(ctx context.Context, trigger string) (*automation.RunResult, error)
}

// AutomationService manages the automation config and manual runs
type AutomationService struct {
	automationRepo *repository.AutomationRepository
	activity       *ActivityService
	executor       RunExecutor
}

func NewAutomationService(db *gorm.DB, activity *ActivityService, executor RunExecutor) *AutomationService {
	return &AutomationService{
		automationRepo: repository.NewAutomationRepository(db),
		activity:       activity,
		executor:       executor,
	}
}

// Get returns the automation config
func (s *AutomationService) Get() (*models.AutomationConfig, error) {
	cfg, err := s.automationRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get automation config: %w", err)
	}
	return cfg, nil
}

// Toggle flips the enabled flag and records the change
func (s *AutomationService) Toggle() (*models.AutomationConfig, error) {
	cfg, err := s.Get()
	if err != nil {
		return nil, err
	}

	cfg.Enabled = !cfg.Enabled
	if cfg.Enabled {
		// Run on the next scheduler tick
		cfg.NextRun = nil
	}
	if err := s.automationRepo.Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to save automation config: %w", err)
	}

	title, description := "Automation Disabled", "Automation has been paused"
	if cfg.Enabled {
		title, description = "Automation Enabled", "Full pipeline automation is now running"
	}
	recordAfterCommit(s.activity, models.ActivityAutomation, title, description)
	return cfg, nil
}

// Update applies a partial config update
func (s *AutomationService) Update(req *models.UpdateAutomationRequest) (*models.AutomationConfig, error) {
	cfg, err := s.Get()
	if err != nil {
		return nil, err
	}

	ApplyAutomationUpdate(cfg, req)
	if err := s.automationRepo.Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to save automation config: %w", err)
	}
	return cfg, nil
}

// ApplyAutomationUpdate copies the set fields of req into cfg
func ApplyAutomationUpdate(cfg *models.AutomationConfig, req *models.UpdateAutomationRequest) {
	if req.Niches != nil {
		cfg.Niches = req.Niches
	}
	if req.Style != nil {
		cfg.Style = *req.Style
	}
	if req.Platforms != nil {
		cfg.Platforms = req.Platforms
	}
	if req.Types != nil {
		cfg.Types = req.Types
	}
	if req.Frequency != nil && *req.Frequency != cfg.Frequency {
		cfg.Frequency = *req.Frequency
		cfg.NextRun = nil
	}
}

// Run performs a manual pipeline run
func (s *AutomationService) Run(ctx context.Context) (*automation.RunResult, error) {
	return s.executor.Execute(ctx, automation.TriggerManual)
}
