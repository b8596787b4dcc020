package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/serenaclinic/serena/internal/models"
	"github.com/serenaclinic/serena/internal/services"
)

type authClaims struct {
	SessionID string `json:"sid"`
	AccountID string `json:"uid"`
	jwt.RegisteredClaims
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, sessionID string, account *models.Account) error {
	token, err := handler.buildToken(sessionID, account, defaultAuthTokenTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) buildToken(sessionID string, account *models.Account, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultAuthTokenTTL
	}
	now := time.Now()

	claims := authClaims{
		SessionID: sessionID,
		AccountID: account.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

// authenticateRequest resolves the auth cookie to a live registry session and
// its acting account. A valid token whose session is gone (process restart,
// logout) is rejected: the cookie never outlives the registry entry.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*services.Session, string, *models.Account, error) {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	if rawToken == "" {
		return nil, "", nil, errors.New("missing auth cookie")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, "", nil, errors.New("invalid token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, "", nil, errors.New("token expired")
	}

	session, ok := handler.lookupSession(claims.SessionID)
	if !ok {
		return nil, "", nil, errors.New("unknown session")
	}
	account, authenticated := session.Current()
	if !authenticated || account.ID != claims.AccountID {
		return nil, "", nil, errors.New("session not authenticated")
	}

	return session, claims.SessionID, &account, nil
}
