package automation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/utils"
)

// Run triggers
const (
	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
	TriggerCLI      = "cli"
)

// SchedulerStore is the persistence the scheduler needs
type SchedulerStore interface {
	GetAutomationConfig() (*models.AutomationConfig, error)
	SetAutomationRun(lastRun, nextRun time.Time) error
	AddActivity(activityType, title, description string) error
}

// RunPublisher enqueues run requests on a message broker
type RunPublisher interface {
	PublishMessage(ctx context.Context, queueName string, message map[string]interface{}) error
}

// PipelineRunner executes one run
type PipelineRunner interface {
	RunOnce(ctx context.Context) (*RunResult, error)
}

// RunMessage is the queue payload for a run request
type RunMessage struct {
	Trigger     string    `json:"trigger"`
	RequestedAt time.Time `json:"requested_at"`
}

// Scheduler starts automation runs when the config says one is due
type Scheduler struct {
	store     SchedulerStore
	runner    PipelineRunner
	locker    Locker
	publisher RunPublisher
	queueName string
	interval  time.Duration
	now       func() time.Time

	mu       sync.Mutex
	running  bool
	stopChan chan bool
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler. A nil locker uses an in-process mutex.
func NewScheduler(store SchedulerStore, runner PipelineRunner, locker Locker, interval time.Duration) *Scheduler {
	if locker == nil {
		locker = NewMutexLocker()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		store:    store,
		runner:   runner,
		locker:   locker,
		interval: interval,
		now:      time.Now,
	}
}

// SetPublisher routes scheduled runs through a queue instead of running inline
func (s *Scheduler) SetPublisher(publisher RunPublisher, queueName string) {
	s.publisher = publisher
	s.queueName = queueName
}

// SetInterval changes how often the config is checked. Takes effect on next Start.
func (s *Scheduler) SetInterval(interval time.Duration) {
	s.interval = interval
}

// Start begins the background check loop
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan bool)

	s.wg.Add(1)
	go s.run(s.stopChan)
	logrus.Infof("Automation scheduler started (interval: %v)", s.interval)
}

// Stop ends the loop and waits for an in-flight check to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()
	logrus.Info("Automation scheduler stopped")
}

func (s *Scheduler) run(stop chan bool) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Tick(context.Background())
	for {
		select {
		case <-ticker.C:
			s.Tick(context.Background())
		case <-stop:
			return
		}
	}
}

// Due reports whether an enabled config has reached its next run time
func Due(cfg *models.AutomationConfig, now time.Time) bool {
	if cfg == nil || !cfg.Enabled {
		return false
	}
	return cfg.NextRun == nil || !now.Before(*cfg.NextRun)
}

// Tick checks the config once and triggers a run when due
func (s *Scheduler) Tick(ctx context.Context) {
	cfg, err := s.store.GetAutomationConfig()
	if err != nil {
		logrus.Errorf("Failed to load automation config: %v", err)
		return
	}

	now := s.now()
	if !Due(cfg, now) {
		return
	}

	// Advance first so a slow or queued run is not triggered twice
	if err := s.store.SetAutomationRun(now, now.Add(cfg.Interval())); err != nil {
		logrus.Errorf("Failed to update automation next run: %v", err)
		return
	}
	s.Trigger(ctx, TriggerSchedule)
}

// Trigger enqueues a run when a publisher is set, otherwise runs inline
func (s *Scheduler) Trigger(ctx context.Context, trigger string) {
	if s.publisher != nil {
		msg := map[string]interface{}{
			"trigger":      trigger,
			"requested_at": s.now(),
		}
		err := s.publisher.PublishMessage(ctx, s.queueName, msg)
		if err == nil {
			return
		}
		logrus.Warnf("Failed to enqueue automation run, running inline: %v", err)
	}

	if _, err := s.Execute(ctx, trigger); err != nil && !errors.Is(err, ErrRunInProgress) {
		logrus.Warnf("Automation run (%s) failed: %v", trigger, err)
	}
}

// HandleRunMessage executes a run requested through the queue
func (s *Scheduler) HandleRunMessage(body []byte) error {
	var msg RunMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal run message: %w", err)
	}
	if msg.Trigger == "" {
		msg.Trigger = TriggerSchedule
	}

	_, err := s.Execute(context.Background(), msg.Trigger)
	if errors.Is(err, ErrRunInProgress) || errors.Is(err, ErrValidationFailed) {
		return nil
	}
	return err
}

// Execute runs the pipeline under the run lock. Validation failures are
// recorded as error activities.
func (s *Scheduler) Execute(ctx context.Context, trigger string) (*RunResult, error) {
	release, ok, err := s.locker.TryLock(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		logrus.Infof("Automation run (%s) skipped: another run is in progress", trigger)
		return nil, ErrRunInProgress
	}
	defer release()

	start := s.now()
	result, err := s.runner.RunOnce(ctx)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			if trigger != TriggerManual {
				if actErr := s.store.AddActivity(models.ActivityError, "Automation Failed", validationErr.Message); actErr != nil {
					logrus.Warnf("Failed to record automation failure: %v", actErr)
				}
			}
			return nil, err
		}
		utils.CaptureError(err, map[string]string{"component": "automation", "trigger": trigger})
		return nil, err
	}

	logrus.Infof("Automation run (%s) completed in %v: %q", trigger, s.now().Sub(start), result.Item.Title)
	return result, nil
}
