package auth

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingCleaner struct {
	calls atomic.Int32
	err   error
}

func (c *countingCleaner) CleanupTokens() (int64, error) {
	c.calls.Add(1)
	return 2, c.err
}

func TestTokenCleanupStopEndsLoop(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "cleanup succeeds"},
		{name: "cleanup fails", err: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaner := &countingCleaner{err: tt.err}
			s := newTokenCleanupService(cleaner, time.Hour)
			s.Start()
			s.Start()

			done := make(chan struct{})
			go func() {
				s.Stop()
				s.Stop()
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("Stop did not return")
			}

			if got := cleaner.calls.Load(); got != 1 {
				t.Fatalf("cleanup calls = %d, want 1", got)
			}
		})
	}
}

func TestTokenCleanupStopBeforeStart(t *testing.T) {
	s := newTokenCleanupService(&countingCleaner{}, 0)
	s.Stop()
	if s.interval != 24*time.Hour {
		t.Fatalf("interval = %v, want 24h", s.interval)
	}
}

func TestTokenCleanupRestart(t *testing.T) {
	cleaner := &countingCleaner{}
	s := newTokenCleanupService(cleaner, time.Hour)

	s.Start()
	s.Stop()
	s.Start()
	s.Stop()

	if got := cleaner.calls.Load(); got != 2 {
		t.Fatalf("cleanup calls = %d, want 2", got)
	}
}
