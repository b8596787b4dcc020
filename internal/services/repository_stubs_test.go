package services

import (
	"sort"
	"time"

	"github.com/serenaclinic/serena/internal/models"
)

type accountRepositoryStub struct {
	accounts  []models.Account
	createErr error
}

func (stub *accountRepositoryStub) CountAccounts() (int64, error) {
	return int64(len(stub.accounts)), nil
}

func (stub *accountRepositoryStub) FindByID(accountID string) (models.Account, bool, error) {
	for _, account := range stub.accounts {
		if account.ID == accountID {
			return account, true, nil
		}
	}
	return models.Account{}, false, nil
}

func (stub *accountRepositoryStub) FindByEmail(email string) (models.Account, bool, error) {
	for _, account := range stub.accounts {
		if account.Email == email {
			return account, true, nil
		}
	}
	return models.Account{}, false, nil
}

func (stub *accountRepositoryStub) Create(account *models.Account) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.accounts = append(stub.accounts, *account)
	return nil
}

func (stub *accountRepositoryStub) ListPatientsOf(therapistID string) ([]models.Account, error) {
	matched := make([]models.Account, 0)
	for _, account := range stub.accounts {
		if account.Role == models.RolePatient && account.TherapistID == therapistID {
			matched = append(matched, account)
		}
	}
	return matched, nil
}

type inviteRepositoryStub struct {
	invites []models.Invite
}

func (stub *inviteRepositoryStub) FindByEmail(email string) (models.Invite, bool, error) {
	for _, invite := range stub.invites {
		if invite.Email == email {
			return invite, true, nil
		}
	}
	return models.Invite{}, false, nil
}

func (stub *inviteRepositoryStub) Create(invite *models.Invite) error {
	stub.invites = append(stub.invites, *invite)
	return nil
}

type moodEntryRepositoryStub struct {
	entries   map[string]models.MoodEntry
	findErr   error
	createErr error
	saveErr   error
}

func newMoodEntryRepositoryStub() *moodEntryRepositoryStub {
	return &moodEntryRepositoryStub{entries: make(map[string]models.MoodEntry)}
}

func (stub *moodEntryRepositoryStub) dayKey(userID string, value time.Time) string {
	return userID + "|" + value.UTC().Format("2006-01-02")
}

func (stub *moodEntryRepositoryStub) ListByUser(userID string) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	for _, entry := range stub.entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

func (stub *moodEntryRepositoryStub) FindByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error) {
	if stub.findErr != nil {
		return models.MoodEntry{}, false, stub.findErr
	}
	for _, entry := range stub.entries {
		if entry.UserID != userID {
			continue
		}
		if entry.Timestamp.Before(dayStart) || !entry.Timestamp.Before(dayEnd) {
			continue
		}
		return entry, true, nil
	}
	return models.MoodEntry{}, false, nil
}

func (stub *moodEntryRepositoryStub) Create(entry *models.MoodEntry) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.entries[stub.dayKey(entry.UserID, entry.Timestamp)] = *entry
	return nil
}

func (stub *moodEntryRepositoryStub) Save(entry *models.MoodEntry) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.entries[stub.dayKey(entry.UserID, entry.Timestamp)] = *entry
	return nil
}

type reflectionRepositoryStub struct {
	reflections map[string]models.Reflection
	findErr     error
	createErr   error
	saveErr     error
}

func newReflectionRepositoryStub() *reflectionRepositoryStub {
	return &reflectionRepositoryStub{reflections: make(map[string]models.Reflection)}
}

func (stub *reflectionRepositoryStub) dayKey(therapistID string, value time.Time) string {
	return therapistID + "|" + value.UTC().Format("2006-01-02")
}

func (stub *reflectionRepositoryStub) FindByTherapistAndDayRange(therapistID string, dayStart time.Time, dayEnd time.Time) (models.Reflection, bool, error) {
	if stub.findErr != nil {
		return models.Reflection{}, false, stub.findErr
	}
	for _, reflection := range stub.reflections {
		if reflection.TherapistID != therapistID {
			continue
		}
		if reflection.Day.Before(dayStart) || !reflection.Day.Before(dayEnd) {
			continue
		}
		return reflection, true, nil
	}
	return models.Reflection{}, false, nil
}

func (stub *reflectionRepositoryStub) Create(reflection *models.Reflection) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.reflections[stub.dayKey(reflection.TherapistID, reflection.Day)] = *reflection
	return nil
}

func (stub *reflectionRepositoryStub) Save(reflection *models.Reflection) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.reflections[stub.dayKey(reflection.TherapistID, reflection.Day)] = *reflection
	return nil
}
