package db

import (
	"time"

	"github.com/serenaclinic/serena/internal/models"
	"gorm.io/gorm"
)

type ReflectionRepository struct {
	database *gorm.DB
}

func NewReflectionRepository(database *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{database: database}
}

func (repo *ReflectionRepository) FindByTherapistAndDayRange(therapistID string, dayStart time.Time, dayEnd time.Time) (models.Reflection, bool, error) {
	var reflection models.Reflection
	result := repo.database.
		Where("therapist_id = ? AND day >= ? AND day < ?", therapistID, dayStart, dayEnd).
		Order("day DESC, id DESC").
		Limit(1).
		Find(&reflection)
	if result.Error != nil {
		return models.Reflection{}, false, result.Error
	}
	return reflection, result.RowsAffected > 0, nil
}

func (repo *ReflectionRepository) Create(reflection *models.Reflection) error {
	return repo.database.Create(reflection).Error
}

func (repo *ReflectionRepository) Save(reflection *models.Reflection) error {
	return repo.database.Save(reflection).Error
}
