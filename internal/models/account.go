package models

import "time"

const (
	RolePatient   = "patient"
	RoleTherapist = "therapist"
)

// Account is a registered identity. The secret is an opaque value compared
// byte for byte; patients carry the id of their assigned therapist, set at
// creation and never changed afterwards.
type Account struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Email       string `gorm:"uniqueIndex;not null"`
	Secret      string `gorm:"not null"`
	Role        string `gorm:"not null;default:patient"`
	TherapistID string `gorm:"index"`
	AvatarURL   string
	CreatedAt   time.Time `gorm:"not null"`
}
