package automation

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
	block chan struct{}
}

func (c *countingRunner) RunOnce(ctx context.Context) (*RunResult, error) {
	c.calls.Add(1)
	if c.block != nil {
		<-c.block
	}
	if c.err != nil {
		return nil, c.err
	}
	return &RunResult{Item: &models.ContentItem{Title: "done"}, ActivityRecorded: true}, nil
}

type recordingPublisher struct {
	queue    string
	messages []map[string]interface{}
	err      error
}

func (r *recordingPublisher) PublishMessage(ctx context.Context, queueName string, message map[string]interface{}) error {
	if r.err != nil {
		return r.err
	}
	r.queue = queueName
	r.messages = append(r.messages, message)
	return nil
}

func TestDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		cfg  *models.AutomationConfig
		want bool
	}{
		{name: "nil config", cfg: nil, want: false},
		{name: "disabled", cfg: &models.AutomationConfig{Enabled: false}, want: false},
		{name: "enabled never run", cfg: &models.AutomationConfig{Enabled: true}, want: true},
		{name: "next run passed", cfg: &models.AutomationConfig{Enabled: true, NextRun: &past}, want: true},
		{name: "next run now", cfg: &models.AutomationConfig{Enabled: true, NextRun: &now}, want: true},
		{name: "next run in future", cfg: &models.AutomationConfig{Enabled: true, NextRun: &future}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Due(tt.cfg, now); got != tt.want {
				t.Fatalf("Due = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTickSchedulesNextRunByFrequency(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		frequency string
		want      time.Duration
	}{
		{frequency: models.FrequencyHourly, want: time.Hour},
		{frequency: models.FrequencyDaily, want: 24 * time.Hour},
		{frequency: models.FrequencyWeekly, want: 7 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.frequency, func(t *testing.T) {
			store := newFakeStore()
			store.config.Enabled = true
			store.config.Frequency = tt.frequency
			runner := &countingRunner{}
			s := NewScheduler(store, runner, nil, time.Minute)
			s.now = func() time.Time { return now }

			s.Tick(context.Background())

			if runner.calls.Load() != 1 {
				t.Fatalf("expected one run, got %d", runner.calls.Load())
			}
			if !store.nextRun.Equal(now.Add(tt.want)) {
				t.Fatalf("next run = %v, want %v", store.nextRun, now.Add(tt.want))
			}

			// Not due again until the next run time
			s.Tick(context.Background())
			if runner.calls.Load() != 1 {
				t.Fatalf("expected no second run, got %d", runner.calls.Load())
			}
		})
	}
}

func TestTickDisabledDoesNothing(t *testing.T) {
	store := newFakeStore()
	runner := &countingRunner{}
	NewScheduler(store, runner, nil, time.Minute).Tick(context.Background())

	if runner.calls.Load() != 0 {
		t.Fatal("disabled automation should not run")
	}
}

func TestTriggerPublishesToQueue(t *testing.T) {
	store := newFakeStore()
	store.config.Enabled = true
	runner := &countingRunner{}
	publisher := &recordingPublisher{}
	s := NewScheduler(store, runner, nil, time.Minute)
	s.SetPublisher(publisher, "automation_runs")

	s.Tick(context.Background())

	if runner.calls.Load() != 0 {
		t.Fatal("queued run should not execute inline")
	}
	if publisher.queue != "automation_runs" || len(publisher.messages) != 1 {
		t.Fatalf("unexpected publish %q %v", publisher.queue, publisher.messages)
	}
	if publisher.messages[0]["trigger"] != TriggerSchedule {
		t.Fatalf("unexpected message %v", publisher.messages[0])
	}
}

func TestTriggerFallsBackInlineWhenPublishFails(t *testing.T) {
	runner := &countingRunner{}
	s := NewScheduler(newFakeStore(), runner, nil, time.Minute)
	s.SetPublisher(&recordingPublisher{err: errors.New("broker down")}, "automation_runs")

	s.Trigger(context.Background(), TriggerManual)

	if runner.calls.Load() != 1 {
		t.Fatalf("expected inline run, got %d", runner.calls.Load())
	}
}

func TestExecuteRejectsOverlappingRuns(t *testing.T) {
	runner := &countingRunner{block: make(chan struct{})}
	s := NewScheduler(newFakeStore(), runner, nil, time.Minute)

	done := make(chan error, 1)
	go func() {
		_, err := s.Execute(context.Background(), TriggerManual)
		done <- err
	}()

	deadline := time.Now().Add(2 * time.Second)
	for runner.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if _, err := s.Execute(context.Background(), TriggerManual); !errors.Is(err, ErrRunInProgress) {
		t.Fatalf("expected ErrRunInProgress, got %v", err)
	}

	close(runner.block)
	if err := <-done; err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if runner.calls.Load() != 1 {
		t.Fatalf("expected exactly one run, got %d", runner.calls.Load())
	}
}

func TestExecuteRecordsValidationFailure(t *testing.T) {
	store := newFakeStore()
	runner := &countingRunner{err: &ValidationError{Provider: "gemini", Message: "Gemini API Key is required for automation"}}
	s := NewScheduler(store, runner, nil, time.Minute)

	if _, err := s.Execute(context.Background(), TriggerSchedule); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.activities) != 1 || store.activities[0].Type != models.ActivityError {
		t.Fatalf("expected error activity, got %v", store.activities)
	}
}

func TestHandleRunMessage(t *testing.T) {
	runner := &countingRunner{}
	s := NewScheduler(newFakeStore(), runner, nil, time.Minute)

	body, _ := json.Marshal(RunMessage{Trigger: TriggerSchedule, RequestedAt: time.Now()})
	if err := s.HandleRunMessage(body); err != nil {
		t.Fatalf("HandleRunMessage returned error: %v", err)
	}
	if runner.calls.Load() != 1 {
		t.Fatalf("expected one run, got %d", runner.calls.Load())
	}

	if err := s.HandleRunMessage([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed message")
	}
}

func TestStartStop(t *testing.T) {
	store := newFakeStore()
	store.config.Enabled = true
	runner := &countingRunner{}
	s := NewScheduler(store, runner, nil, time.Hour)

	s.Start()
	s.Start()
	deadline := time.Now().Add(2 * time.Second)
	for runner.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	s.Stop()
	s.Stop()

	if runner.calls.Load() != 1 {
		t.Fatalf("expected the initial tick to run once, got %d", runner.calls.Load())
	}
}
