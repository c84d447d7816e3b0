package auth

import (
	"sync"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type tokenCleaner interface {
	CleanupTokens() (int64, error)
}

type TokenCleanupService struct {
	refreshTokenRepo tokenCleaner
	interval         time.Duration

	mu       sync.Mutex
	running  bool
	stopChan chan bool
	wg       sync.WaitGroup
}

func NewTokenCleanupService(db *gorm.DB, interval time.Duration) *TokenCleanupService {
	return newTokenCleanupService(repository.NewRefreshTokenRepository(db), interval)
}

func newTokenCleanupService(repo tokenCleaner, interval time.Duration) *TokenCleanupService {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &TokenCleanupService{
		refreshTokenRepo: repo,
		interval:         interval,
	}
}

// Start starts the token cleanup service
func (s *TokenCleanupService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan bool)

	s.wg.Add(1)
	go s.run(s.stopChan)
	logrus.Infof("Token cleanup service started (interval: %v)", s.interval)
}

// Stop stops the token cleanup service and waits for the loop to exit
func (s *TokenCleanupService) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()
	logrus.Info("Token cleanup service stopped")
}

func (s *TokenCleanupService) run(stop chan bool) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-stop:
			return
		}
	}
}

// cleanup deletes expired and revoked refresh tokens
func (s *TokenCleanupService) cleanup() {
	deleted, err := s.refreshTokenRepo.CleanupTokens()
	if err != nil {
		logrus.Errorf("Failed to cleanup tokens: %v", err)
		return
	}
	logrus.Infof("Token cleanup completed: %d token(s) removed", deleted)
}
