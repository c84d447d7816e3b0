package api_key

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// keyPrefix marks automation API keys so they are recognisable in configs
const keyPrefix = "ac_"

var (
	ErrInvalidAPIKey  = errors.New("invalid API key")
	ErrAPIKeyNotFound = errors.New("API key not found")
	ErrUserInactive   = errors.New("user is not active")
)

// Service issues and validates the API keys external schedulers use
type Service struct {
	apiKeyRepo *repository.APIKeyRepository
	userRepo   *repository.UserRepository
}

// NewService creates a new API key service
func NewService(db *gorm.DB) *Service {
	return &Service{
		apiKeyRepo: repository.NewAPIKeyRepository(db),
		userRepo:   repository.NewUserRepository(db),
	}
}

// GenerateAPIKey issues a new key for the user, replacing any existing one
func (s *Service) GenerateAPIKey(userID string) (*models.APIKey, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if _, err := s.apiKeyRepo.DeleteByUserID(userID); err != nil {
		return nil, fmt.Errorf("failed to delete existing API key: %w", err)
	}

	key, err := GenerateRandomKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}

	created, err := s.apiKeyRepo.Create(&models.APIKey{
		Key:      key,
		UserID:   userID,
		IsActive: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}
	return created, nil
}

// ValidateAPIKey returns the owner of an active key
func (s *Service) ValidateAPIKey(key string) (*models.User, error) {
	apiKey, err := s.apiKeyRepo.GetByKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get API key: %w", err)
	}
	if apiKey == nil {
		return nil, ErrInvalidAPIKey
	}

	user, err := s.userRepo.GetByID(apiKey.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if err := s.apiKeyRepo.UpdateLastUsed(apiKey.ID); err != nil {
		logrus.Warnf("Failed to update API key last used timestamp: %v", err)
	}
	return user, nil
}

// GetAPIKeyByUserID returns the user's key or ErrAPIKeyNotFound
func (s *Service) GetAPIKeyByUserID(userID string) (*models.APIKey, error) {
	apiKey, err := s.apiKeyRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get API key: %w", err)
	}
	if apiKey == nil {
		return nil, ErrAPIKeyNotFound
	}
	return apiKey, nil
}

// DeleteAPIKey revokes the user's key
func (s *Service) DeleteAPIKey(userID string) error {
	deleted, err := s.apiKeyRepo.DeleteByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}
	if !deleted {
		return ErrAPIKeyNotFound
	}
	return nil
}

// GenerateRandomKey returns a prefixed random 32-byte hex string
func GenerateRandomKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return keyPrefix + hex.EncodeToString(bytes), nil
}
