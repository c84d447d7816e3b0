package services

import (
	"fmt"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SystemService clears all generated data for a fresh start
type SystemService struct {
	contentRepo    *repository.ContentRepository
	scheduleRepo   *repository.ScheduleRepository
	automationRepo *repository.AutomationRepository
	settingsRepo   *repository.SettingsRepository
	activity       *ActivityService
}

func NewSystemService(db *gorm.DB, activity *ActivityService) *SystemService {
	return &SystemService{
		contentRepo:    repository.NewContentRepository(db),
		scheduleRepo:   repository.NewScheduleRepository(db),
		automationRepo: repository.NewAutomationRepository(db),
		settingsRepo:   repository.NewSettingsRepository(db),
		activity:       activity,
	}
}

// Reset deletes content, schedules, activities, automation config and settings,
// then records a "System Reset" activity. Users and accounts are kept.
func (s *SystemService) Reset() error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"scheduled posts", s.scheduleRepo.DeleteAll},
		{"content", s.contentRepo.DeleteAll},
		{"activities", s.activity.DeleteAll},
		{"automation config", s.automationRepo.Delete},
		{"settings", s.settingsRepo.Delete},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("failed to reset %s: %w", step.name, err)
		}
	}

	logrus.Warn("System data reset")

	recordAfterCommit(s.activity, models.ActivityAuth, "System Reset", "All data has been cleared for a new beginning.")
	return nil
}
