package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serenaclinic/serena/internal/models"
)

// Moods publishes the fixed mood scale, highest rank first, with the chart
// scores and emoji the screens render.
func (handler *Handler) Moods(c *fiber.Ctx) error {
	scale := models.MoodScale()
	moods := make([]fiber.Map, 0, len(scale))
	for _, mood := range scale {
		moods = append(moods, fiber.Map{
			"value": mood,
			"score": models.MoodScore(mood),
			"emoji": models.MoodEmoji(mood),
		})
	}
	return c.JSON(fiber.Map{"moods": moods})
}

func (handler *Handler) GetEntries(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}
	account, ok := currentAccount(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}

	entries, err := session.EntriesFor(account.ID)
	if err != nil {
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	return c.JSON(fiber.Map{"entries": entryViews(entries)})
}

// UpsertEntry records today's check-in for the acting identity. A second
// submit on the same day replaces the first; the core silently ignores the
// call for identities it does not accept, surfaced here as 204.
func (handler *Handler) UpsertEntry(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}

	input := moodEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.localizedError(c, fiber.StatusBadRequest, "journal.error.unknown_mood")
	}
	if !models.IsValidMood(input.Mood) {
		return handler.localizedError(c, fiber.StatusBadRequest, "journal.error.unknown_mood")
	}

	entry, performed, err := session.UpsertMoodEntry(input.Mood, input.Note)
	if err != nil {
		return handler.localizedError(c, fiber.StatusInternalServerError, "journal.error.save_failed")
	}
	if !performed {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(fiber.Map{"entry": entryView(entry)})
}
