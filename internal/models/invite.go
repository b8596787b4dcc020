package models

// Invite pre-authorizes one email to register with a fixed role and, for
// patients, a fixed therapist link. Invites are checked but never consumed:
// registration only starts failing once the email is claimed by an account.
type Invite struct {
	ID          uint   `gorm:"primaryKey"`
	Email       string `gorm:"uniqueIndex;not null"`
	Role        string `gorm:"not null"`
	TherapistID string
}
