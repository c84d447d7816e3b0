package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"gorm.io/gorm"
)

// ErrScheduleNotPending is returned when cancelling a post that already ran
var ErrScheduleNotPending = errors.New("scheduled post is not pending")

// scheduleTimeLayout renders scheduled times in activity descriptions
const scheduleTimeLayout = "1/2/2006, 3:04:05 PM"

// ScheduleService manages posts waiting for the publish dispatcher
type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
	contentRepo  *repository.ContentRepository
	activity     *ActivityService
}

func NewScheduleService(db *gorm.DB, activity *ActivityService) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: repository.NewScheduleRepository(db),
		contentRepo:  repository.NewContentRepository(db),
		activity:     activity,
	}
}

// AddSchedule queues contentID for publishing to platform at scheduledAt
func (s *ScheduleService) AddSchedule(contentID, platform string, scheduledAt time.Time) (*models.ScheduledPost, error) {
	if _, err := s.contentRepo.GetByID(contentID); err != nil {
		return nil, fmt.Errorf("failed to get content %s: %w", contentID, err)
	}

	post := &models.ScheduledPost{
		ContentID:   contentID,
		Platform:    platform,
		ScheduledAt: scheduledAt,
		Status:      models.ScheduleStatusPending,
	}
	if err := s.scheduleRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create scheduled post: %w", err)
	}

	description := fmt.Sprintf("Scheduled for %s at %s", platform, scheduledAt.Local().Format(scheduleTimeLayout))
	recordAfterCommit(s.activity, models.ActivitySchedule, "Post Scheduled", description)
	return post, nil
}

// List returns every scheduled post with its content
func (s *ScheduleService) List() ([]models.ScheduledPost, error) {
	posts, err := s.scheduleRepo.ListWithContent()
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled posts: %w", err)
	}
	return posts, nil
}

// Cancel stops a pending post from being published
func (s *ScheduleService) Cancel(id string) error {
	post, err := s.scheduleRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to get scheduled post %s: %w", id, err)
	}
	if post.Status != models.ScheduleStatusPending {
		return ErrScheduleNotPending
	}
	if err := s.scheduleRepo.UpdateStatus(id, models.ScheduleStatusCancelled, "Cancelled by user"); err != nil {
		return fmt.Errorf("failed to cancel scheduled post: %w", err)
	}
	return nil
}
