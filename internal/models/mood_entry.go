package models

import "time"

// The five mood ranks, kept in the product language. Order matters: the
// scale runs from the highest rank to the lowest.
const (
	MoodRadiant    = "Radiante"
	MoodGood       = "Bem"
	MoodNeutral    = "Neutro"
	MoodSad        = "Triste"
	MoodDevastated = "Devastado"
)

// MoodEntry is one calendar day's check-in for one patient. The timestamp
// records the instant of the last write; at most one entry exists per
// (user, local calendar day).
type MoodEntry struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;index"`
	Timestamp time.Time `gorm:"not null;index"`
	Mood      string    `gorm:"not null"`
	Note      string
	Completed bool      `gorm:"not null;default:false"`
}

// MoodScale returns the fixed mood ranks from highest to lowest.
func MoodScale() []string {
	return []string{MoodRadiant, MoodGood, MoodNeutral, MoodSad, MoodDevastated}
}

func IsValidMood(mood string) bool {
	switch mood {
	case MoodRadiant, MoodGood, MoodNeutral, MoodSad, MoodDevastated:
		return true
	}
	return false
}

// MoodScore maps a mood rank to its 1-5 chart score. Unknown values score
// as neutral, matching the reference charts.
func MoodScore(mood string) int {
	switch mood {
	case MoodRadiant:
		return 5
	case MoodGood:
		return 4
	case MoodNeutral:
		return 3
	case MoodSad:
		return 2
	case MoodDevastated:
		return 1
	}
	return 3
}

func MoodEmoji(mood string) string {
	switch mood {
	case MoodRadiant:
		return "🤩"
	case MoodGood:
		return "🙂"
	case MoodNeutral:
		return "😐"
	case MoodSad:
		return "😔"
	case MoodDevastated:
		return "😫"
	}
	return ""
}
