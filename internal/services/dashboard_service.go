package services

import (
	"fmt"
	"math"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"gorm.io/gorm"
)

const (
	dashboardActivityLimit = 10
	dashboardContentLimit  = 5
	dashboardUpcomingLimit = 5
)

// DashboardService aggregates the dashboard home page
type DashboardService struct {
	contentRepo    *repository.ContentRepository
	scheduleRepo   *repository.ScheduleRepository
	automationRepo *repository.AutomationRepository
	activity       *ActivityService
}

func NewDashboardService(db *gorm.DB, activity *ActivityService) *DashboardService {
	return &DashboardService{
		contentRepo:    repository.NewContentRepository(db),
		scheduleRepo:   repository.NewScheduleRepository(db),
		automationRepo: repository.NewAutomationRepository(db),
		activity:       activity,
	}
}

// GetStats counts content by status and pending schedules
func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	total, err := s.contentRepo.Count("")
	if err != nil {
		return nil, fmt.Errorf("failed to count content: %w", err)
	}
	published, err := s.contentRepo.Count(models.ContentStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to count published content: %w", err)
	}
	generating, err := s.contentRepo.Count(models.ContentStatusGenerating)
	if err != nil {
		return nil, fmt.Errorf("failed to count generating content: %w", err)
	}
	scheduled, err := s.scheduleRepo.CountPending()
	if err != nil {
		return nil, fmt.Errorf("failed to count scheduled posts: %w", err)
	}

	return &models.DashboardStats{
		TotalContent: total,
		Published:    published,
		Scheduled:    scheduled,
		Generating:   generating,
		SuccessRate:  SuccessRate(published, total),
	}, nil
}

// GetDashboard returns stats plus the recent activity, content and upcoming posts
func (s *DashboardService) GetDashboard() (*models.DashboardResponse, error) {
	stats, err := s.GetStats()
	if err != nil {
		return nil, err
	}
	activities, err := s.activity.List("", dashboardActivityLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	content, err := s.contentRepo.Recent(dashboardContentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent content: %w", err)
	}
	upcoming, err := s.scheduleRepo.Upcoming(dashboardUpcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming posts: %w", err)
	}
	automation, err := s.automationRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get automation config: %w", err)
	}

	return &models.DashboardResponse{
		Stats:             *stats,
		RecentActivity:    activities,
		RecentContent:     content,
		UpcomingScheduled: upcoming,
		Automation:        automation,
	}, nil
}

// SuccessRate is the rounded percentage of published items, 0 for an empty library
func SuccessRate(published, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(published) / float64(total) * 100))
}
