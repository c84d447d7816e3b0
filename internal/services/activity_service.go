package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultActivityLimit is the number of entries the activity feed returns
const DefaultActivityLimit = 50

// ActivityRecorder appends entries to the activity feed
type ActivityRecorder interface {
	Record(activityType, title, description string) (*models.ActivityLog, error)
}

// recordAfterCommit records the activity for a change that is already saved.
// A failure is only logged so the caller still reports the saved change.
func recordAfterCommit(recorder ActivityRecorder, activityType, title, description string) {
	if _, err := recorder.Record(activityType, title, description); err != nil {
		logrus.Warnf("Failed to record %q activity: %v", title, err)
	}
}

// ActivityService records the activity feed and pushes new entries to SSE clients
type ActivityService struct {
	activityRepo    *repository.ActivityRepository
	sseHub          *SSEHub
	cleanupStopChan chan bool
}

func NewActivityService(db *gorm.DB, sseHub *SSEHub) *ActivityService {
	return &ActivityService{
		activityRepo:    repository.NewActivityRepository(db),
		sseHub:          sseHub,
		cleanupStopChan: make(chan bool),
	}
}

// Record creates an activity entry and broadcasts it
func (s *ActivityService) Record(activityType, title, description string) (*models.ActivityLog, error) {
	return s.RecordWithMetadata(activityType, title, description, nil)
}

// RecordWithMetadata creates an activity entry with structured metadata
func (s *ActivityService) RecordWithMetadata(activityType, title, description string, metadata map[string]interface{}) (*models.ActivityLog, error) {
	activity := &models.ActivityLog{
		Type:        activityType,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal activity metadata: %w", err)
		}
		activity.Metadata = datatypes.JSON(raw)
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	if s.sseHub != nil {
		s.sseHub.BroadcastActivity(activity)
	}
	return activity, nil
}

// List returns the latest activities, optionally of one type
func (s *ActivityService) List(activityType string, limit, offset int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	return s.activityRepo.List(activityType, limit, offset)
}

// DeleteAll clears the activity feed
func (s *ActivityService) DeleteAll() error {
	return s.activityRepo.DeleteAll()
}

// StartCleanup periodically deletes activities older than retentionDays
func (s *ActivityService) StartCleanup(interval time.Duration, retentionDays int) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.cleanupOldActivities(retentionDays)

		for {
			select {
			case <-ticker.C:
				s.cleanupOldActivities(retentionDays)
			case <-s.cleanupStopChan:
				return
			}
		}
	}()
	logrus.Infof("Activity cleanup service started (interval: %v, retention: %d days)", interval, retentionDays)
}

// StopCleanup stops the cleanup loop
func (s *ActivityService) StopCleanup() {
	select {
	case s.cleanupStopChan <- true:
	default:
	}
}

func (s *ActivityService) cleanupOldActivities(retentionDays int) {
	deletedCount, err := s.activityRepo.DeleteOlderThan(retentionDays)
	if err != nil {
		logrus.Errorf("Failed to cleanup old activities: %v", err)
		return
	}

	if deletedCount > 0 {
		logrus.Infof("Activity cleanup completed: deleted %d entries older than %d day(s)", deletedCount, retentionDays)
	} else {
		logrus.Debugf("Activity cleanup completed: nothing older than %d day(s)", retentionDays)
	}
}
