package config

import (
	"fmt"
	"time"

	"support-assistant-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens a postgres-backed gorm handle. The handle is safe for
// concurrent use; callers inject it instead of reaching for a package
// global.
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info().Msg("database connected")
	return db, nil
}

// MigrateAllModels creates the schema for every model on startup.
func MigrateAllModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Ticket{},
		&models.Message{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info().Msg("database migration completed")
	return nil
}
