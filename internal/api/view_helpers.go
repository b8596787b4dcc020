package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/serenaclinic/serena/internal/models"
)

func accountView(account models.Account) fiber.Map {
	view := fiber.Map{
		"id":         account.ID,
		"name":       account.Name,
		"email":      account.Email,
		"role":       account.Role,
		"avatar_url": account.AvatarURL,
	}
	if account.TherapistID != "" {
		view["therapist_id"] = account.TherapistID
	}
	return view
}

func accountViews(accounts []models.Account) []fiber.Map {
	views := make([]fiber.Map, 0, len(accounts))
	for index := range accounts {
		views = append(views, accountView(accounts[index]))
	}
	return views
}

func entryView(entry models.MoodEntry) fiber.Map {
	return fiber.Map{
		"id":        entry.ID,
		"user_id":   entry.UserID,
		"timestamp": entry.Timestamp.Format(time.RFC3339),
		"mood":      entry.Mood,
		"score":     models.MoodScore(entry.Mood),
		"note":      entry.Note,
		"completed": entry.Completed,
	}
}

func entryViews(entries []models.MoodEntry) []fiber.Map {
	views := make([]fiber.Map, 0, len(entries))
	for index := range entries {
		views = append(views, entryView(entries[index]))
	}
	return views
}

func reflectionView(reflection models.Reflection) fiber.Map {
	view := fiber.Map{
		"id":           reflection.ID,
		"therapist_id": reflection.TherapistID,
		"day":          reflection.Day.Format("2006-01-02"),
		"content":      reflection.Content,
	}
	if reflection.AudioURL != "" {
		view["audio_url"] = reflection.AudioURL
		view["duration"] = reflection.Duration
	}
	return view
}
