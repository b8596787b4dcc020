package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/serenaclinic/serena/internal/db"
	"github.com/serenaclinic/serena/internal/i18n"
	"github.com/serenaclinic/serena/internal/services"
)

// newTestApp boots the full HTTP surface over an in-memory database seeded
// with the demo clinic, with the simulated auth latency disabled.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.Open(db.InMemoryDSN)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	repos := db.NewRepositories(database)

	setup := services.NewSetupService(repos.Accounts, repos.Invites, repos.MoodEntries, repos.Reflections, time.UTC)
	if err := setup.SeedDemoData(time.Now().UTC()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	i18nManager, err := i18n.NewManager(i18n.LangPT)
	if err != nil {
		t.Fatalf("i18n: %v", err)
	}

	handler := NewHandler(repos, "test-secret-key", time.UTC, 0, i18nManager, false)

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	return app
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, body any, authCookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.AddCookie(&http.Cookie{Name: authCookieName, Value: authCookie})
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	payload := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func extractAuthCookie(t *testing.T, response *http.Response) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatal("response carries no auth cookie")
	return ""
}

func login(t *testing.T, app *fiber.App, email string, secret string) string {
	t.Helper()

	response := performJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":  email,
		"secret": secret,
	}, "")
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("login %s: status %d", email, response.StatusCode)
	}
	return extractAuthCookie(t, response)
}
