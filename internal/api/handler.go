package api

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/serenaclinic/serena/internal/db"
	"github.com/serenaclinic/serena/internal/i18n"
	"github.com/serenaclinic/serena/internal/models"
	"github.com/serenaclinic/serena/internal/services"
)

const (
	authCookieName     = "serena_auth"
	languageCookieName = "serena_lang"

	contextSessionKey   = "current_session"
	contextSessionIDKey = "current_session_id"
	contextAccountKey   = "current_account"
	contextLanguageKey  = "current_language"
	contextMessagesKey  = "current_messages"
)

const defaultAuthTokenTTL = 24 * time.Hour

// Handler wires the HTTP surface to the domain services. It also keeps the
// in-memory session registry: the auth cookie only names a registry entry, so
// a process restart forgets every session and each start begins Anonymous.
type Handler struct {
	directory    *services.DirectoryService
	journal      *services.MoodJournalService
	board        *services.ReflectionBoardService
	i18n         *i18n.Manager
	secretKey    []byte
	location     *time.Location
	latency      time.Duration
	cookieSecure bool

	sessionsMu sync.Mutex
	sessions   map[string]*services.Session
}

func NewHandler(repos *db.Repositories, secretKey string, location *time.Location, latency time.Duration, i18nManager *i18n.Manager, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		directory:    services.NewDirectoryService(repos.Accounts, repos.Invites),
		journal:      services.NewMoodJournalService(repos.MoodEntries, location),
		board:        services.NewReflectionBoardService(repos.Reflections, location),
		i18n:         i18nManager,
		secretKey:    []byte(secretKey),
		location:     location,
		latency:      latency,
		cookieSecure: cookieSecure,
		sessions:     map[string]*services.Session{},
	}
}

func currentAccount(c *fiber.Ctx) (*models.Account, bool) {
	account, ok := c.Locals(contextAccountKey).(*models.Account)
	return account, ok
}

func currentSession(c *fiber.Ctx) (*services.Session, bool) {
	session, ok := c.Locals(contextSessionKey).(*services.Session)
	return session, ok
}
