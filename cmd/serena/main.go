package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/serenaclinic/serena/internal/api"
	"github.com/serenaclinic/serena/internal/db"
	"github.com/serenaclinic/serena/internal/i18n"
	"github.com/serenaclinic/serena/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", db.InMemoryDSN)
	port := getEnv("PORT", "8080")
	defaultLanguage := getEnv("DEFAULT_LANGUAGE", "pt")
	latency := parseLatency(getEnv("AUTH_LATENCY", ""), services.DefaultAuthLatency)
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	database, err := db.Open(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	repos := db.NewRepositories(database)

	setup := services.NewSetupService(repos.Accounts, repos.Invites, repos.MoodEntries, repos.Reflections, location)
	needsSeed, err := setup.RequiresInitialSeed()
	if err != nil {
		log.Fatalf("seed check failed: %v", err)
	}
	if needsSeed {
		if err := setup.SeedDemoData(time.Now().In(location)); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		log.Printf("seeded demo clinic data")
	}

	i18nManager, err := i18n.NewManager(defaultLanguage)
	if err != nil {
		log.Fatalf("i18n init failed: %v", err)
	}

	handler := api.NewHandler(repos, secretKey, location, latency, i18nManager, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Serena",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Serena listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

// parseLatency reads the simulated auth latency; "0" disables the pause.
func parseLatency(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed < 0 {
		log.Printf("invalid AUTH_LATENCY %q, using %s", raw, fallback)
		return fallback
	}
	return parsed
}
