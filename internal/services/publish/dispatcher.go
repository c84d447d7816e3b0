package publish

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

// ScheduleStore is the persistence the dispatcher needs
type ScheduleStore interface {
	ListDueSchedules(now time.Time) ([]models.ScheduledPost, error)
	UpdateScheduleStatus(id, status, message string) error
}

// ContentPublisher publishes one item
type ContentPublisher interface {
	PublishContent(ctx context.Context, contentID, platform string) (*models.PublishResult, error)
}

// Dispatcher publishes scheduled posts once they are due
type Dispatcher struct {
	store     ScheduleStore
	publisher ContentPublisher
	interval  time.Duration
	now       func() time.Time
	stopChan  chan bool
	wg        sync.WaitGroup
}

// NewDispatcher creates a dispatcher checking every interval
func NewDispatcher(store ScheduleStore, publisher ContentPublisher, interval time.Duration) *Dispatcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Dispatcher{
		store:     store,
		publisher: publisher,
		interval:  interval,
		now:       time.Now,
		stopChan:  make(chan bool),
	}
}

// Start starts the dispatch loop
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.run()
	logrus.Infof("Schedule dispatcher started (interval: %v)", d.interval)
}

// Stop stops the dispatch loop and waits for the current pass
func (d *Dispatcher) Stop() {
	close(d.stopChan)
	d.wg.Wait()
	logrus.Info("Schedule dispatcher stopped")
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-d.stopChan
		cancel()
	}()

	d.DispatchDue(ctx)
	for {
		select {
		case <-ticker.C:
			d.DispatchDue(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// DispatchDue publishes every pending post whose time has come and
// returns how many were processed
func (d *Dispatcher) DispatchDue(ctx context.Context) int {
	posts, err := d.store.ListDueSchedules(d.now())
	if err != nil {
		logrus.Errorf("Failed to load due scheduled posts: %v", err)
		return 0
	}

	processed := 0
	for _, post := range posts {
		if ctx.Err() != nil {
			break
		}

		status := models.ScheduleStatusPublished
		var message string
		result, err := d.publisher.PublishContent(ctx, post.ContentID, post.Platform)
		switch {
		case err != nil:
			status = models.ScheduleStatusFailed
			message = err.Error()
		case !result.Success:
			status = models.ScheduleStatusFailed
			message = result.Message
		default:
			message = result.URL
		}

		if err := d.store.UpdateScheduleStatus(post.ID, status, message); err != nil {
			logrus.Errorf("Failed to update scheduled post %s: %v", post.ID, err)
			continue
		}
		processed++
	}

	if processed > 0 {
		logrus.Infof("Schedule dispatch completed: processed %d post(s)", processed)
	} else {
		logrus.Debug("Schedule dispatch completed: nothing due")
	}
	return processed
}

// SetInterval sets the dispatch interval. Takes effect on next Start.
func (d *Dispatcher) SetInterval(interval time.Duration) {
	d.interval = interval
}
