package db

import (
	"github.com/serenaclinic/serena/internal/models"
	"gorm.io/gorm"
)

type InviteRepository struct {
	database *gorm.DB
}

func NewInviteRepository(database *gorm.DB) *InviteRepository {
	return &InviteRepository{database: database}
}

// FindByEmail matches the whitelist byte for byte, same contract as the
// account lookup.
func (repo *InviteRepository) FindByEmail(email string) (models.Invite, bool, error) {
	var invite models.Invite
	result := repo.database.Where("email = ?", email).Limit(1).Find(&invite)
	if result.Error != nil {
		return models.Invite{}, false, result.Error
	}
	return invite, result.RowsAffected > 0, nil
}

func (repo *InviteRepository) Create(invite *models.Invite) error {
	return repo.database.Create(invite).Error
}
