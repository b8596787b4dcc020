package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/serenaclinic/serena/internal/services"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.localizedError(c, fiber.StatusBadRequest, "auth.error.invalid_input")
	}
	if input.Email == "" || input.Secret == "" {
		return handler.localizedError(c, fiber.StatusBadRequest, "auth.error.invalid_input")
	}

	// A request already carrying a live session re-authenticates in place:
	// a failed attempt leaves the current identity signed in and parks the
	// error where /api/auth/error can report it.
	session, sessionID := handler.requestSession(c)
	if err := session.Login(c.UserContext(), input.Email, input.Secret); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.invalid_credentials")
		}
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}

	return handler.respondAuthenticated(c, session, sessionID, fiber.StatusOK)
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.localizedError(c, fiber.StatusBadRequest, "auth.error.invalid_input")
	}
	if input.Name == "" || input.Email == "" || input.Secret == "" {
		return handler.localizedError(c, fiber.StatusBadRequest, "auth.error.invalid_input")
	}

	session, sessionID := handler.requestSession(c)
	if err := session.Register(c.UserContext(), input.Name, input.Email, input.Secret); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			return handler.localizedError(c, fiber.StatusConflict, "auth.error.email_exists")
		case errors.Is(err, services.ErrNotInvited):
			return handler.localizedError(c, fiber.StatusForbidden, "auth.error.not_invited")
		}
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}

	// Registration signs the new account in directly.
	return handler.respondAuthenticated(c, session, sessionID, fiber.StatusCreated)
}

// requestSession resolves the cookie to its live registry session, or mints
// a fresh unregistered one for first-time callers.
func (handler *Handler) requestSession(c *fiber.Ctx) (*services.Session, string) {
	if session, sessionID, _, err := handler.authenticateRequest(c); err == nil {
		return session, sessionID
	}
	return handler.newSession(), ""
}

func (handler *Handler) respondAuthenticated(c *fiber.Ctx, session *services.Session, sessionID string, status int) error {
	account, ok := session.Current()
	if !ok {
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}

	fresh := sessionID == ""
	if fresh {
		var err error
		sessionID, err = handler.storeSession(session)
		if err != nil {
			return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
		}
	}
	if err := handler.setAuthCookie(c, sessionID, &account); err != nil {
		if fresh {
			handler.dropSession(sessionID)
		}
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}

	return c.Status(status).JSON(fiber.Map{"account": accountView(account)})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	if session, ok := currentSession(c); ok {
		session.Logout()
	}
	if sessionID, ok := c.Locals(contextSessionIDKey).(string); ok {
		handler.dropSession(sessionID)
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}
	return c.JSON(fiber.Map{"account": accountView(*account)})
}

// AuthError exposes the session's single-slot error for the SPA banner.
func (handler *Handler) AuthError(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}

	lastErr := session.LastError()
	if lastErr == nil {
		return c.JSON(fiber.Map{"error": nil})
	}
	key := authErrorKey(lastErr)
	return c.JSON(fiber.Map{
		"error":     translateMessage(currentMessages(c), key),
		"error_key": key,
	})
}

func (handler *Handler) ClearAuthError(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}
	session.ClearError()
	return c.JSON(fiber.Map{"ok": true})
}

func authErrorKey(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return "auth.error.invalid_credentials"
	case errors.Is(err, services.ErrDuplicateEmail):
		return "auth.error.email_exists"
	case errors.Is(err, services.ErrNotInvited):
		return "auth.error.not_invited"
	}
	return "common.error.internal"
}
