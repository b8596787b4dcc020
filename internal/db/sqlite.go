package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/serenaclinic/serena/internal/models"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InMemoryDSN keeps all state volatile for the lifetime of the process,
// which is the default deployment mode.
const InMemoryDSN = ":memory:"

func Open(dbPath string) (*gorm.DB, error) {
	if strings.TrimSpace(dbPath) == "" {
		dbPath = InMemoryDSN
	}

	dsn := dbPath
	if !isMemoryDSN(dbPath) {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		dsn = fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	}

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if isMemoryDSN(dbPath) {
		// Every sqlite connection gets its own :memory: database, so the
		// pool must stay at a single connection.
		sqlDB, err := database.DB()
		if err != nil {
			return nil, fmt.Errorf("access connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := database.AutoMigrate(
		&models.Account{},
		&models.Invite{},
		&models.MoodEntry{},
		&models.Reflection{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return database, nil
}

func isMemoryDSN(dbPath string) bool {
	return dbPath == InMemoryDSN || strings.Contains(dbPath, "mode=memory")
}
