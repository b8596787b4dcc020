package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/register", handler.Register)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/error", handler.AuthRequired, handler.AuthError)
	auth.Post("/clear-error", handler.AuthRequired, handler.ClearAuthError)

	api.Get("/me", handler.AuthRequired, handler.Me)
	api.Get("/moods", handler.Moods)

	entries := api.Group("/entries", handler.AuthRequired)
	entries.Get("", handler.GetEntries)
	entries.Post("", handler.UpsertEntry)

	patients := api.Group("/patients", handler.AuthRequired)
	patients.Get("", handler.TherapistOnly, handler.GetPatients)
	patients.Get("/:id/entries", handler.GetPatientEntries)

	reflections := api.Group("/reflections", handler.AuthRequired)
	reflections.Get("", handler.GetMyReflection)
	reflections.Get("/:therapistId", handler.GetReflection)
	reflections.Post("", handler.PublishReflection)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
