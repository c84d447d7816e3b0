package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

// ErrContentNotFound is returned when the content to publish does not exist
var ErrContentNotFound = errors.New("content not found")

// Store is the persistence the publisher needs. GetContent returns
// ErrContentNotFound when the item is missing.
type Store interface {
	GetContent(id string) (*models.ContentItem, error)
	UpdateContent(item *models.ContentItem) error
	AddActivity(activityType, title, description string) error
}

// PlatformClient performs the actual publish
type PlatformClient interface {
	SimulatePublish(ctx context.Context, platform string) (models.PublishResult, error)
}

// Publisher moves content through publishing -> published|failed
type Publisher struct {
	store  Store
	client PlatformClient
	now    func() time.Time
}

// NewPublisher creates a publisher
func NewPublisher(store Store, client PlatformClient) *Publisher {
	return &Publisher{store: store, client: client, now: time.Now}
}

// PublishContent publishes one content item to a platform
func (p *Publisher) PublishContent(ctx context.Context, contentID, platform string) (*models.PublishResult, error) {
	item, err := p.store.GetContent(contentID)
	if err != nil {
		return nil, err
	}

	item.Status = models.ContentStatusPublishing
	if err := p.store.UpdateContent(item); err != nil {
		return nil, fmt.Errorf("failed to mark content as publishing: %w", err)
	}
	p.record(models.ActivityPublish, "Publishing Started", fmt.Sprintf("\"%s\" is being sent to %s...", item.Title, platform))

	result, err := p.client.SimulatePublish(ctx, platform)
	if err != nil {
		// Leave a terminal status so the item does not stay "publishing"
		item.Status = models.ContentStatusFailed
		if updateErr := p.store.UpdateContent(item); updateErr != nil {
			logrus.Errorf("Failed to mark content %s as failed: %v", item.ID, updateErr)
		}
		return nil, fmt.Errorf("publish to %s interrupted: %w", platform, err)
	}

	if result.Success {
		now := p.now()
		item.Status = models.ContentStatusPublished
		item.PublishedURL = result.URL
		item.PublishedAt = &now
		if err := p.store.UpdateContent(item); err != nil {
			return nil, fmt.Errorf("failed to mark content as published: %w", err)
		}
		p.record(models.ActivityPublish, "Published to "+strings.ToUpper(platform), fmt.Sprintf("\"%s\" is now live!", item.Title))
	} else {
		item.Status = models.ContentStatusFailed
		if err := p.store.UpdateContent(item); err != nil {
			return nil, fmt.Errorf("failed to mark content as failed: %w", err)
		}
		p.record(models.ActivityError, "Publish Failed", fmt.Sprintf("%s for \"%s\"", result.Message, item.Title))
	}

	logrus.Infof("Publish %s to %s: success=%v", item.ID, platform, result.Success)
	return &result, nil
}

func (p *Publisher) record(activityType, title, description string) {
	if err := p.store.AddActivity(activityType, title, description); err != nil {
		logrus.Warnf("Failed to record activity %q: %v", title, err)
	}
}
