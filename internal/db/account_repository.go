package db

import (
	"github.com/serenaclinic/serena/internal/models"
	"gorm.io/gorm"
)

type AccountRepository struct {
	database *gorm.DB
}

func NewAccountRepository(database *gorm.DB) *AccountRepository {
	return &AccountRepository{database: database}
}

func (repo *AccountRepository) CountAccounts() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Account{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *AccountRepository) FindByID(accountID string) (models.Account, bool, error) {
	var account models.Account
	result := repo.database.Where("id = ?", accountID).Limit(1).Find(&account)
	if result.Error != nil {
		return models.Account{}, false, result.Error
	}
	return account, result.RowsAffected > 0, nil
}

// FindByEmail matches byte for byte: no trimming, no case folding. The
// accounts table keeps sqlite's BINARY collation for exactly this reason.
func (repo *AccountRepository) FindByEmail(email string) (models.Account, bool, error) {
	var account models.Account
	result := repo.database.Where("email = ?", email).Limit(1).Find(&account)
	if result.Error != nil {
		return models.Account{}, false, result.Error
	}
	return account, result.RowsAffected > 0, nil
}

func (repo *AccountRepository) Create(account *models.Account) error {
	return repo.database.Create(account).Error
}

// ListPatientsOf returns the therapist's patients in insertion order, which
// sqlite exposes as rowid order.
func (repo *AccountRepository) ListPatientsOf(therapistID string) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	if err := repo.database.
		Where("role = ? AND therapist_id = ?", models.RolePatient, therapistID).
		Order("rowid ASC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
