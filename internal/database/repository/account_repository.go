package repository

import (
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"gorm.io/gorm"
)

// AccountRepository handles database operations for platform accounts
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// List returns all platform accounts ordered by platform
func (r *AccountRepository) List() ([]models.PlatformAccount, error) {
	var accounts []models.PlatformAccount
	err := r.db.Order("platform ASC").Find(&accounts).Error
	return accounts, err
}

// GetByPlatform retrieves the account of a platform
func (r *AccountRepository) GetByPlatform(platform string) (*models.PlatformAccount, error) {
	var account models.PlatformAccount
	if err := r.db.Where("platform = ?", platform).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// Update saves an account
func (r *AccountRepository) Update(account *models.PlatformAccount) error {
	return r.db.Save(account).Error
}

// DeleteAll removes every account
func (r *AccountRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.PlatformAccount{}).Error
}
