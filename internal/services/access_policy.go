package services

import "github.com/serenaclinic/serena/internal/models"

func IsTherapistAccount(account *models.Account) bool {
	return account != nil && account.Role == models.RoleTherapist
}

func IsPatientAccount(account *models.Account) bool {
	return account != nil && account.Role == models.RolePatient
}

// CanViewEntries reports whether viewer may read owner's journal history:
// everyone sees their own, and a therapist sees the patients linked to them.
func CanViewEntries(viewer *models.Account, owner *models.Account) bool {
	if viewer == nil || owner == nil {
		return false
	}
	if viewer.ID == owner.ID {
		return true
	}
	return IsTherapistAccount(viewer) &&
		IsPatientAccount(owner) &&
		owner.TherapistID == viewer.ID
}

// TherapistIDFor returns the therapist whose reflection the account should
// see on its dashboard: therapists read their own board, patients their
// assigned therapist's.
func TherapistIDFor(account *models.Account) (string, bool) {
	if account == nil {
		return "", false
	}
	if account.Role == models.RoleTherapist {
		return account.ID, true
	}
	if account.TherapistID != "" {
		return account.TherapistID, true
	}
	return "", false
}
