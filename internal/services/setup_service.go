package services

import (
	"fmt"
	"time"

	"github.com/serenaclinic/serena/internal/models"
)

type SetupAccountRepository interface {
	CountAccounts() (int64, error)
	Create(account *models.Account) error
}

type SetupInviteRepository interface {
	Create(invite *models.Invite) error
}

type SetupEntryRepository interface {
	Create(entry *models.MoodEntry) error
}

type SetupReflectionRepository interface {
	Create(reflection *models.Reflection) error
}

// SetupService seeds the demo clinic on first run: accounts, the invite
// whitelist, a week of journal history per patient and today's reflection.
type SetupService struct {
	accounts    SetupAccountRepository
	invites     SetupInviteRepository
	entries     SetupEntryRepository
	reflections SetupReflectionRepository
	location    *time.Location
}

func NewSetupService(
	accounts SetupAccountRepository,
	invites SetupInviteRepository,
	entries SetupEntryRepository,
	reflections SetupReflectionRepository,
	location *time.Location,
) *SetupService {
	if location == nil {
		location = time.UTC
	}
	return &SetupService{
		accounts:    accounts,
		invites:     invites,
		entries:     entries,
		reflections: reflections,
		location:    location,
	}
}

func (service *SetupService) RequiresInitialSeed() (bool, error) {
	count, err := service.accounts.CountAccounts()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (service *SetupService) SeedDemoData(now time.Time) error {
	seeds := models.DefaultSeedAccounts()
	for index := range seeds {
		seed := seeds[index]
		account := models.Account{
			ID:          seed.ID,
			Name:        seed.Name,
			Email:       seed.Email,
			Secret:      seed.Secret,
			Role:        seed.Role,
			TherapistID: seed.TherapistID,
			AvatarURL:   seed.AvatarURL,
			CreatedAt:   now,
		}
		if err := service.accounts.Create(&account); err != nil {
			return fmt.Errorf("seed account %s: %w", seed.Email, err)
		}
		if seed.Role == models.RolePatient {
			if err := service.seedHistory(seed.ID, now); err != nil {
				return err
			}
		}
	}

	invites := models.DefaultInvites()
	for index := range invites {
		invite := invites[index]
		invite.ID = 0
		if err := service.invites.Create(&invite); err != nil {
			return fmt.Errorf("seed invite %s: %w", invite.Email, err)
		}
	}

	reflection := models.DefaultSeedReflection()
	reflection.Day = DateAtLocation(now, service.location)
	if err := service.reflections.Create(&reflection); err != nil {
		return fmt.Errorf("seed reflection: %w", err)
	}

	return nil
}

// seedHistory writes seven consecutive days of demo check-ins ending today.
// The rotation over the mood scale is deterministic so tests and demos see
// stable data.
func (service *SetupService) seedHistory(userID string, now time.Time) error {
	scale := models.MoodScale()
	notes := models.DefaultSeedNotes()

	for daysAgo := 6; daysAgo >= 0; daysAgo-- {
		day := DateAtLocation(now.AddDate(0, 0, -daysAgo), service.location)
		timestamp := day.Add(9 * time.Hour)
		if daysAgo == 0 {
			// Today's seed must not sit in the future relative to process start.
			timestamp = now
		}
		moodIndex := (daysAgo + len(userID)) % len(scale)
		entry := models.MoodEntry{
			ID:        fmt.Sprintf("log-%s-%d", userID, daysAgo),
			UserID:    userID,
			Timestamp: timestamp,
			Mood:      scale[moodIndex],
			Note:      notes[moodIndex%len(notes)],
			Completed: daysAgo%3 != 0,
		}
		if err := service.entries.Create(&entry); err != nil {
			return fmt.Errorf("seed history for %s: %w", userID, err)
		}
	}
	return nil
}
