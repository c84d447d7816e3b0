package services

import (
	"fmt"
	"strings"

	"github.com/onegreenvn/autocontent-backend/internal/database/repository"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"gorm.io/gorm"
)

// AccountService connects and disconnects platform accounts
type AccountService struct {
	accountRepo *repository.AccountRepository
	activity    *ActivityService
}

func NewAccountService(db *gorm.DB, activity *ActivityService) *AccountService {
	return &AccountService{
		accountRepo: repository.NewAccountRepository(db),
		activity:    activity,
	}
}

// List returns every platform account
func (s *AccountService) List() ([]models.PlatformAccount, error) {
	accounts, err := s.accountRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Connect marks the platform account connected, storing apiKey when given
func (s *AccountService) Connect(platform, apiKey string) (*models.PlatformAccount, error) {
	account, err := s.accountRepo.GetByPlatform(platform)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s account: %w", platform, err)
	}

	account.Connected = true
	if apiKey = strings.TrimSpace(apiKey); apiKey != "" {
		account.APIKey = apiKey
	}
	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	recordAfterCommit(s.activity, models.ActivityAuth, "Account Connected", "Connected to "+strings.ToUpper(platform))
	return account, nil
}

// Disconnect marks the platform account disconnected
func (s *AccountService) Disconnect(platform string) (*models.PlatformAccount, error) {
	account, err := s.accountRepo.GetByPlatform(platform)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s account: %w", platform, err)
	}

	account.Connected = false
	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	recordAfterCommit(s.activity, models.ActivityAuth, "Account Disconnected", "Disconnected from "+strings.ToUpper(platform))
	return account, nil
}
