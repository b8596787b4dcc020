package db

import "gorm.io/gorm"

type Repositories struct {
	Accounts    *AccountRepository
	Invites     *InviteRepository
	MoodEntries *MoodEntryRepository
	Reflections *ReflectionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Accounts:    NewAccountRepository(database),
		Invites:     NewInviteRepository(database),
		MoodEntries: NewMoodEntryRepository(database),
		Reflections: NewReflectionRepository(database),
	}
}
