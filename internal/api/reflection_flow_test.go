package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSeededReflectionIsVisibleToPatients(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "sofia@exemplo.com", "123")

	response := performJSON(t, app, fiber.MethodGet, "/api/reflections/t1", nil, cookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("reflection status %d", response.StatusCode)
	}

	reflection, ok := decodeBody(t, response)["reflection"].(map[string]any)
	if !ok {
		t.Fatal("the seeded reflection should be published for today")
	}
	if reflection["therapist_id"] != "t1" || reflection["content"] == "" {
		t.Fatalf("unexpected reflection %+v", reflection)
	}
}

func TestMyReflectionResolvesTheViewersBoard(t *testing.T) {
	app := newTestApp(t)

	// A patient's own board is their assigned therapist's.
	sofiaCookie := login(t, app, "sofia@exemplo.com", "123")
	response := performJSON(t, app, fiber.MethodGet, "/api/reflections", nil, sofiaCookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("patient board status %d", response.StatusCode)
	}
	reflection, ok := decodeBody(t, response)["reflection"].(map[string]any)
	if !ok || reflection["therapist_id"] != "t1" {
		t.Fatalf("patient board should resolve to t1, got %+v", reflection)
	}

	// A therapist reads their own board through the same route.
	andreCookie := login(t, app, "andre@clinica.com", "123")
	response = performJSON(t, app, fiber.MethodGet, "/api/reflections", nil, andreCookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("therapist board status %d", response.StatusCode)
	}
	reflection, ok = decodeBody(t, response)["reflection"].(map[string]any)
	if !ok || reflection["therapist_id"] != "t1" {
		t.Fatalf("therapist board should resolve to their own id, got %+v", reflection)
	}
}

func TestMyReflectionIsNullForAnEmptyBoard(t *testing.T) {
	app := newTestApp(t)

	// A newly registered therapist has published nothing yet.
	response := performJSON(t, app, fiber.MethodPost, "/api/auth/register", fiber.Map{
		"name":   "Nova Terapeuta",
		"email":  "novo@terapeuta.com",
		"secret": "segredo",
	}, "")
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status %d", response.StatusCode)
	}
	cookie := extractAuthCookie(t, response)

	board := performJSON(t, app, fiber.MethodGet, "/api/reflections", nil, cookie)
	if board.StatusCode != fiber.StatusOK {
		t.Fatalf("board status %d", board.StatusCode)
	}
	if payload := decodeBody(t, board); payload["reflection"] != nil {
		t.Fatalf("expected a null board, got %+v", payload)
	}
}

func TestReflectionForUnknownTherapistIsNull(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "sofia@exemplo.com", "123")

	response := performJSON(t, app, fiber.MethodGet, "/api/reflections/t999", nil, cookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("reflection status %d", response.StatusCode)
	}
	if payload := decodeBody(t, response); payload["reflection"] != nil {
		t.Fatalf("expected a null reflection, got %+v", payload)
	}
}

func TestPublishReflectionUpsertsToday(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "andre@clinica.com", "123")

	first := performJSON(t, app, fiber.MethodPost, "/api/reflections", fiber.Map{
		"content": "Primeira versão do dia.",
	}, cookie)
	if first.StatusCode != fiber.StatusOK {
		t.Fatalf("first publish status %d", first.StatusCode)
	}
	firstReflection := decodeBody(t, first)["reflection"].(map[string]any)

	second := performJSON(t, app, fiber.MethodPost, "/api/reflections", fiber.Map{
		"content":   "Versão revisada, agora com áudio.",
		"has_audio": true,
	}, cookie)
	if second.StatusCode != fiber.StatusOK {
		t.Fatalf("second publish status %d", second.StatusCode)
	}
	secondReflection := decodeBody(t, second)["reflection"].(map[string]any)

	if secondReflection["id"] != firstReflection["id"] {
		t.Fatalf("republishing must keep the id: %v vs %v", secondReflection["id"], firstReflection["id"])
	}
	if secondReflection["audio_url"] == nil || secondReflection["duration"] == nil {
		t.Fatalf("audio publish should carry the placeholders, got %+v", secondReflection)
	}

	visible := performJSON(t, app, fiber.MethodGet, "/api/reflections/t1", nil, cookie)
	reflection := decodeBody(t, visible)["reflection"].(map[string]any)
	if reflection["content"] != "Versão revisada, agora com áudio." {
		t.Fatalf("latest publish should win, got %v", reflection["content"])
	}
}

func TestPatientPublishIsSilentlyIgnored(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "sofia@exemplo.com", "123")

	response := performJSON(t, app, fiber.MethodPost, "/api/reflections", fiber.Map{
		"content": "Tentativa de paciente.",
	}, cookie)
	if response.StatusCode != fiber.StatusNoContent {
		t.Fatalf("patient publish should be a 204 no-op, got %d", response.StatusCode)
	}
}

func TestPublishRejectsBlankContent(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "andre@clinica.com", "123")

	response := performJSON(t, app, fiber.MethodPost, "/api/reflections", fiber.Map{
		"content": "   ",
	}, cookie)
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
	if key := decodeBody(t, response)["error_key"]; key != "reflection.error.empty_content" {
		t.Fatalf("unexpected error key %v", key)
	}
}
