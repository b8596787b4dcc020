package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serenaclinic/serena/internal/services"
)

func (handler *Handler) GetPatients(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}
	account, ok := currentAccount(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}

	patients, err := session.PatientsOf(account.ID)
	if err != nil {
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	return c.JSON(fiber.Map{"patients": accountViews(patients)})
}

// GetPatientEntries serves a patient's history to viewers the access policy
// accepts: the patient themselves or their linked therapist.
func (handler *Handler) GetPatientEntries(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}
	viewer, ok := currentAccount(c)
	if !ok {
		return handler.localizedError(c, fiber.StatusUnauthorized, "auth.error.unauthorized")
	}

	owner, found, err := handler.directory.FindByID(c.Params("id"))
	if err != nil {
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	if !found {
		return handler.localizedError(c, fiber.StatusNotFound, "common.error.not_found")
	}
	if !services.CanViewEntries(viewer, &owner) {
		return handler.localizedError(c, fiber.StatusForbidden, "auth.error.forbidden")
	}

	entries, err := session.EntriesFor(owner.ID)
	if err != nil {
		return handler.localizedError(c, fiber.StatusInternalServerError, "common.error.internal")
	}
	return c.JSON(fiber.Map{"entries": entryViews(entries)})
}
