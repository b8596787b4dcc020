package models

import "time"

// Audio capture is stubbed in this release; published reflections that carry
// audio reference these fixed placeholders.
const (
	ReflectionAudioPlaceholder    = "mock-audio.mp3"
	ReflectionDurationPlaceholder = "2:30"
)

// Reflection is one calendar day's broadcast message from a therapist to all
// of their patients. Day holds local midnight of the publication day; at most
// one reflection exists per (therapist, day).
type Reflection struct {
	ID          string    `gorm:"primaryKey"`
	TherapistID string    `gorm:"not null;uniqueIndex:uidx_therapist_day"`
	Day         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_therapist_day"`
	Content     string    `gorm:"not null"`
	AudioURL    string
	Duration    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
