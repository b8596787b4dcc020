package services

import (
	"errors"
	"time"

	"github.com/serenaclinic/serena/internal/models"
	"github.com/serenaclinic/serena/internal/security"
)

var (
	ErrUnknownMood           = errors.New("unknown mood")
	ErrMoodEntryLoadFailed   = errors.New("load mood entry failed")
	ErrMoodEntryCreateFailed = errors.New("create mood entry failed")
	ErrMoodEntryUpdateFailed = errors.New("update mood entry failed")
)

type JournalEntryRepository interface {
	ListByUser(userID string) ([]models.MoodEntry, error)
	FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error)
	Create(entry *models.MoodEntry) error
	Save(entry *models.MoodEntry) error
}

// MoodJournalService owns the mood-log entries and enforces the
// one-entry-per-user-per-calendar-day invariant through upsert.
type MoodJournalService struct {
	entries  JournalEntryRepository
	location *time.Location
}

func NewMoodJournalService(entries JournalEntryRepository, location *time.Location) *MoodJournalService {
	if location == nil {
		location = time.UTC
	}
	return &MoodJournalService{entries: entries, location: location}
}

// UpsertEntry records the user's check-in for the calendar day containing at.
// A second check-in on the same day replaces mood, note and timestamp in
// place, preserving the entry id.
func (service *MoodJournalService) UpsertEntry(userID string, mood string, note string, at time.Time) (models.MoodEntry, error) {
	if !models.IsValidMood(mood) {
		return models.MoodEntry{}, ErrUnknownMood
	}

	dayStart, dayEnd := DayRange(at, service.location)
	entry, found, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.MoodEntry{}, ErrMoodEntryLoadFailed
	}

	if found {
		entry.Mood = mood
		entry.Note = note
		entry.Timestamp = at
		if err := service.entries.Save(&entry); err != nil {
			return models.MoodEntry{}, ErrMoodEntryUpdateFailed
		}
		return entry, nil
	}

	id, err := security.NewID("log")
	if err != nil {
		return models.MoodEntry{}, ErrMoodEntryCreateFailed
	}
	entry = models.MoodEntry{
		ID:        id,
		UserID:    userID,
		Timestamp: at,
		Mood:      mood,
		Note:      note,
		Completed: true,
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.MoodEntry{}, ErrMoodEntryCreateFailed
	}
	return entry, nil
}

// EntriesFor returns the user's history sorted strictly descending by
// timestamp, most recent first.
func (service *MoodJournalService) EntriesFor(userID string) ([]models.MoodEntry, error) {
	return service.entries.ListByUser(userID)
}
