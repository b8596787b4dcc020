package services

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/serenaclinic/serena/internal/models"
	"github.com/serenaclinic/serena/internal/security"
)

var ErrAccountCreateFailed = errors.New("create account failed")

type DirectoryAccountRepository interface {
	FindByID(accountID string) (models.Account, bool, error)
	FindByEmail(email string) (models.Account, bool, error)
	Create(account *models.Account) error
	ListPatientsOf(therapistID string) ([]models.Account, error)
}

type DirectoryInviteRepository interface {
	FindByEmail(email string) (models.Invite, bool, error)
}

// DirectoryService owns the registered accounts and the invite whitelist.
// It is pure lookup and construction: uniqueness is the session manager's
// responsibility.
type DirectoryService struct {
	accounts DirectoryAccountRepository
	invites  DirectoryInviteRepository
}

func NewDirectoryService(accounts DirectoryAccountRepository, invites DirectoryInviteRepository) *DirectoryService {
	return &DirectoryService{accounts: accounts, invites: invites}
}

func (service *DirectoryService) FindByID(accountID string) (models.Account, bool, error) {
	return service.accounts.FindByID(accountID)
}

func (service *DirectoryService) FindByEmail(email string) (models.Account, bool, error) {
	return service.accounts.FindByEmail(email)
}

func (service *DirectoryService) FindInvite(email string) (models.Invite, bool, error) {
	return service.invites.FindByEmail(email)
}

func (service *DirectoryService) CreateAccount(name string, email string, secret string, role string, therapistID string) (models.Account, error) {
	id, err := security.NewID(idPrefixForRole(role))
	if err != nil {
		return models.Account{}, ErrAccountCreateFailed
	}

	account := models.Account{
		ID:          id,
		Name:        name,
		Email:       email,
		Secret:      secret,
		Role:        role,
		TherapistID: therapistID,
		AvatarURL:   DefaultAvatarURL(name),
		CreatedAt:   time.Now(),
	}
	if err := service.accounts.Create(&account); err != nil {
		return models.Account{}, ErrAccountCreateFailed
	}
	return account, nil
}

func (service *DirectoryService) PatientsOf(therapistID string) ([]models.Account, error) {
	return service.accounts.ListPatientsOf(therapistID)
}

// DefaultAvatarURL derives the default avatar deterministically from the
// display name, so the same name always yields the same reference.
func DefaultAvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s", url.QueryEscape(name))
}

func idPrefixForRole(role string) string {
	if role == models.RoleTherapist {
		return "t"
	}
	return "u"
}
