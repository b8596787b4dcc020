package db

import (
	"time"

	"github.com/serenaclinic/serena/internal/models"
	"gorm.io/gorm"
)

type MoodEntryRepository struct {
	database *gorm.DB
}

func NewMoodEntryRepository(database *gorm.DB) *MoodEntryRepository {
	return &MoodEntryRepository{database: database}
}

// ListByUser returns the user's full history, most recent write first. The
// rest of the app (recent history views, "last known mood") depends on this
// ordering.
func (repo *MoodEntryRepository) ListByUser(userID string) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MoodEntryRepository) FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error) {
	var entry models.MoodEntry
	result := repo.database.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, dayStart, dayEnd).
		Order("timestamp DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MoodEntry{}, false, result.Error
	}
	return entry, result.RowsAffected > 0, nil
}

func (repo *MoodEntryRepository) Create(entry *models.MoodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *MoodEntryRepository) Save(entry *models.MoodEntry) error {
	return repo.database.Save(entry).Error
}
