package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/serenaclinic/serena/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already has an account")
	ErrNotInvited         = errors.New("email is not on the invite whitelist")
)

// DefaultAuthLatency simulates the network round-trip of the auth backend.
const DefaultAuthLatency = 500 * time.Millisecond

// Session is the state machine owning "who is acting now". It starts
// Anonymous, becomes Authenticated through Login or Register, and is the only
// component allowed to change the acting identity. Each runtime session gets
// its own instance, so simulated sessions never cross-talk.
//
// Login and Register are serialized behind the session mutex, held across the
// simulated latency pause: only one auth call is in flight per session.
type Session struct {
	directory *DirectoryService
	journal   *MoodJournalService
	board     *ReflectionBoardService
	latency   time.Duration
	location  *time.Location

	mu      sync.Mutex
	acting  *models.Account
	lastErr error
}

func NewSession(directory *DirectoryService, journal *MoodJournalService, board *ReflectionBoardService, latency time.Duration, location *time.Location) *Session {
	if location == nil {
		location = time.UTC
	}
	return &Session{
		directory: directory,
		journal:   journal,
		board:     board,
		latency:   latency,
		location:  location,
	}
}

// Login authenticates by byte-exact email lookup and secret comparison. On
// failure it records ErrInvalidCredentials and leaves the acting identity
// exactly as it was, whether Anonymous or Authenticated.
func (session *Session) Login(ctx context.Context, email string, secret string) error {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.lastErr = nil
	if err := session.pause(ctx); err != nil {
		return err
	}

	account, found, err := session.directory.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("login lookup: %w", err)
	}
	if !found || account.Secret != secret {
		session.lastErr = ErrInvalidCredentials
		return ErrInvalidCredentials
	}

	session.acting = &account
	return nil
}

// Register creates an account for a whitelisted email and signs it in
// directly, no separate login step. Role and therapist link come from the
// matched invite, never from caller input.
func (session *Session) Register(ctx context.Context, name string, email string, secret string) error {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.lastErr = nil
	if err := session.pause(ctx); err != nil {
		return err
	}

	_, claimed, err := session.directory.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("register lookup: %w", err)
	}
	if claimed {
		session.lastErr = ErrDuplicateEmail
		return ErrDuplicateEmail
	}

	invite, invited, err := session.directory.FindInvite(email)
	if err != nil {
		return fmt.Errorf("register invite lookup: %w", err)
	}
	if !invited {
		session.lastErr = ErrNotInvited
		return ErrNotInvited
	}

	account, err := session.directory.CreateAccount(name, email, secret, invite.Role, invite.TherapistID)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	session.acting = &account
	return nil
}

// Logout unconditionally returns the session to Anonymous and clears any
// recorded error. Calling it while Anonymous is a no-op.
func (session *Session) Logout() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.acting = nil
	session.lastErr = nil
}

func (session *Session) ClearError() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastErr = nil
}

// LastError exposes the single-slot, latest-wins auth error.
func (session *Session) LastError() error {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.lastErr
}

// Current returns a copy of the acting account, if any.
func (session *Session) Current() (models.Account, bool) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.acting == nil {
		return models.Account{}, false
	}
	return *session.acting, true
}

// UpsertMoodEntry records today's check-in for the acting patient.
// Identities the journal does not accept (anonymous or therapist) are
// silently ignored (performed=false, no mutation), preserved from the
// reference behavior; actingWithRole is the one place to harden should that
// contract ever change.
func (session *Session) UpsertMoodEntry(mood string, note string) (models.MoodEntry, bool, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	acting, ok := session.actingWithRole(models.RolePatient)
	if !ok {
		return models.MoodEntry{}, false, nil
	}
	entry, err := session.journal.UpsertEntry(acting.ID, mood, note, session.now())
	if err != nil {
		return models.MoodEntry{}, false, err
	}
	return entry, true, nil
}

// PublishReflection upserts today's reflection for the acting therapist.
// Non-therapist identities are silently ignored, same contract as
// UpsertMoodEntry.
func (session *Session) PublishReflection(content string, hasAudio bool) (models.Reflection, bool, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	acting, ok := session.actingWithRole(models.RoleTherapist)
	if !ok {
		return models.Reflection{}, false, nil
	}
	reflection, err := session.board.Publish(acting.ID, content, hasAudio, session.now())
	if err != nil {
		return models.Reflection{}, false, err
	}
	return reflection, true, nil
}

func (session *Session) EntriesFor(userID string) ([]models.MoodEntry, error) {
	return session.journal.EntriesFor(userID)
}

func (session *Session) PatientsOf(therapistID string) ([]models.Account, error) {
	return session.directory.PatientsOf(therapistID)
}

func (session *Session) ReflectionFor(therapistID string) (models.Reflection, bool, error) {
	return session.board.ReflectionFor(therapistID, session.now())
}

// actingWithRole is the single authorization gate for commands: the session
// must be authenticated and the acting account must hold the role.
func (session *Session) actingWithRole(role string) (*models.Account, bool) {
	if session.acting == nil || session.acting.Role != role {
		return nil, false
	}
	return session.acting, true
}

func (session *Session) now() time.Time {
	return time.Now().In(session.location)
}

// pause models the auth backend's latency. Cancelling the context aborts the
// call before any state is touched.
func (session *Session) pause(ctx context.Context) error {
	if session.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(session.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
