package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/serenaclinic/serena/internal/services"
)

// GetMyReflection resolves the viewer's own board: therapists read their own
// reflection, patients their assigned therapist's. Patients without a linked
// therapist have no board and get a null payload.
func (handler *Handler) GetMyReflection(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}
	account, ok := currentAccount(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}

	therapistID, ok := services.TherapistIDFor(account)
	if !ok {
		return c.JSON(fiber.Map{"reflection": nil})
	}

	reflection, found, err := session.ReflectionFor(therapistID)
	if err != nil {
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	if !found {
		return c.JSON(fiber.Map{"reflection": nil})
	}
	return c.JSON(fiber.Map{"reflection": reflectionView(reflection)})
}

// GetReflection returns today's reflection for the named therapist, or a null
// payload when nothing was published yet. The core does not restrict which
// therapist id a caller may read; the screens only ever supply the viewer's
// own linked therapist.
func (handler *Handler) GetReflection(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}

	reflection, found, err := session.ReflectionFor(c.Params("therapistId"))
	if err != nil {
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	if !found {
		return c.JSON(fiber.Map{"reflection": nil})
	}
	return c.JSON(fiber.Map{"reflection": reflectionView(reflection)})
}

// PublishReflection upserts today's reflection for the acting therapist. The
// core silently ignores non-therapist identities, surfaced here as 204.
func (handler *Handler) PublishReflection(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}

	input := reflectionInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.localizedError(c, fiber.StatusBadRequest, "reflection.error.empty_content")
	}
	if strings.TrimSpace(input.Content) == "" {
		return handler.localizedError(c, fiber.StatusBadRequest, "reflection.error.empty_content")
	}

	reflection, performed, err := session.PublishReflection(input.Content, input.HasAudio)
	if err != nil {
		return handler.localizedError(c, fiber.StatusInternalServerError, "reflection.error.save_failed")
	}
	if !performed {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(fiber.Map{"reflection": reflectionView(reflection)})
}
