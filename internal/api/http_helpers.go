package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, _ := c.Locals(contextMessagesKey).(map[string]string)
	return messages
}

func translateMessage(messages map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return key
}

// localizedError renders an error payload in the request language. The
// machine-readable key travels alongside the human message so the SPA can
// branch without string matching.
func (handler *Handler) localizedError(c *fiber.Ctx, status int, key string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":     translateMessage(currentMessages(c), key),
		"error_key": key,
	})
}
