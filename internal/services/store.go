package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/automation"
	"github.com/onegreenvn/autocontent-backend/internal/services/publish"
	"gorm.io/gorm"
)

// Store adapts the repositories to the persistence interfaces of the
// automation and publish packages
type Store struct {
	contentRepo    contentRecords
	settingsRepo   *repository.SettingsRepository
	automationRepo *repository.AutomationRepository
	scheduleRepo   *repository.ScheduleRepository
	activity       ActivityRecorder
}

type contentRecords interface {
	Create(item *models.ContentItem) error
	GetByID(id string) (*models.ContentItem, error)
	Update(item *models.ContentItem) error
}

var (
	_ automation.Store          = (*Store)(nil)
	_ automation.SchedulerStore = (*Store)(nil)
	_ publish.Store             = (*Store)(nil)
	_ publish.ScheduleStore     = (*Store)(nil)
)

func NewStore(db *gorm.DB, activity *ActivityService) *Store {
	return &Store{
		contentRepo:    repository.NewContentRepository(db),
		settingsRepo:   repository.NewSettingsRepository(db),
		automationRepo: repository.NewAutomationRepository(db),
		scheduleRepo:   repository.NewScheduleRepository(db),
		activity:       activity,
	}
}

func (s *Store) GetSettings() (*models.SystemSettings, error) {
	return s.settingsRepo.Get()
}

func (s *Store) GetAutomationConfig() (*models.AutomationConfig, error) {
	return s.automationRepo.Get()
}

func (s *Store) SetAutomationRun(lastRun, nextRun time.Time) error {
	return s.automationRepo.SetNextRun(lastRun, nextRun)
}

// AddContent stores an item and records a "Content Generated" activity.
// Only the content insert can fail it.
func (s *Store) AddContent(item *models.ContentItem) error {
	if err := s.contentRepo.Create(item); err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}
	recordAfterCommit(s.activity, models.ActivityGenerate, "Content Generated",
		fmt.Sprintf("%s: \"%s\"", strings.ToUpper(item.Type), item.Title))
	return nil
}

func (s *Store) AddActivity(activityType, title, description string) error {
	_, err := s.activity.Record(activityType, title, description)
	return err
}

func (s *Store) GetContent(id string) (*models.ContentItem, error) {
	item, err := s.contentRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("content %s: %w", id, publish.ErrContentNotFound)
	}
	return item, err
}

func (s *Store) UpdateContent(item *models.ContentItem) error {
	return s.contentRepo.Update(item)
}

func (s *Store) ListDueSchedules(now time.Time) ([]models.ScheduledPost, error) {
	return s.scheduleRepo.ListDue(now)
}

func (s *Store) UpdateScheduleStatus(id, status, message string) error {
	return s.scheduleRepo.UpdateStatus(id, status, message)
}
