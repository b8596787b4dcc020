package services

import (
	"errors"
	"time"

	"github.com/serenaclinic/serena/internal/models"
	"github.com/serenaclinic/serena/internal/security"
)

var (
	ErrReflectionLoadFailed   = errors.New("load reflection failed")
	ErrReflectionCreateFailed = errors.New("create reflection failed")
	ErrReflectionUpdateFailed = errors.New("update reflection failed")
)

type BoardReflectionRepository interface {
	FindByTherapistAndDayRange(therapistID string, dayStart time.Time, dayEnd time.Time) (models.Reflection, bool, error)
	Create(reflection *models.Reflection) error
	Save(reflection *models.Reflection) error
}

// ReflectionBoardService owns the daily therapist reflections. It mirrors the
// mood journal's upsert contract with the therapist as the owner dimension:
// at most one reflection per (therapist, local calendar day).
type ReflectionBoardService struct {
	reflections BoardReflectionRepository
	location    *time.Location
	audioURL    string
	duration    string
}

func NewReflectionBoardService(reflections BoardReflectionRepository, location *time.Location) *ReflectionBoardService {
	if location == nil {
		location = time.UTC
	}
	return &ReflectionBoardService{
		reflections: reflections,
		location:    location,
		audioURL:    models.ReflectionAudioPlaceholder,
		duration:    models.ReflectionDurationPlaceholder,
	}
}

// Publish upserts the therapist's reflection for the calendar day containing
// at. Audio reference and duration are set to the placeholders when hasAudio
// and cleared otherwise; the id survives republishing.
func (service *ReflectionBoardService) Publish(therapistID string, content string, hasAudio bool, at time.Time) (models.Reflection, error) {
	dayStart, dayEnd := DayRange(at, service.location)
	reflection, found, err := service.reflections.FindByTherapistAndDayRange(therapistID, dayStart, dayEnd)
	if err != nil {
		return models.Reflection{}, ErrReflectionLoadFailed
	}

	audioURL, duration := "", ""
	if hasAudio {
		audioURL, duration = service.audioURL, service.duration
	}

	if found {
		reflection.Content = content
		reflection.AudioURL = audioURL
		reflection.Duration = duration
		if err := service.reflections.Save(&reflection); err != nil {
			return models.Reflection{}, ErrReflectionUpdateFailed
		}
		return reflection, nil
	}

	id, err := security.NewID("r")
	if err != nil {
		return models.Reflection{}, ErrReflectionCreateFailed
	}
	reflection = models.Reflection{
		ID:          id,
		TherapistID: therapistID,
		Day:         dayStart,
		Content:     content,
		AudioURL:    audioURL,
		Duration:    duration,
	}
	if err := service.reflections.Create(&reflection); err != nil {
		return models.Reflection{}, ErrReflectionCreateFailed
	}
	return reflection, nil
}

// ReflectionFor returns the reflection published for the calendar day
// containing at, if any. Anyone holding the therapist id may read it.
func (service *ReflectionBoardService) ReflectionFor(therapistID string, at time.Time) (models.Reflection, bool, error) {
	dayStart, dayEnd := DayRange(at, service.location)
	reflection, found, err := service.reflections.FindByTherapistAndDayRange(therapistID, dayStart, dayEnd)
	if err != nil {
		return models.Reflection{}, false, ErrReflectionLoadFailed
	}
	return reflection, found, nil
}
