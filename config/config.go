package config

import (
	"fmt"
	"os"

	"github.com/DevAnseSenior/daily-diet/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the database selected by DB_DRIVER ("postgres" by default,
// "sqlite" for a local file) and runs migrations. The handle is returned to
// the caller; nothing here is kept as package state.
func InitDB() (*gorm.DB, error) {
	_ = godotenv.Load()

	var dialector gorm.Dialector
	switch os.Getenv("DB_DRIVER") {
	case "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "daily-diet.db"
		}
		dialector = sqlite.Open(path)
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Meal{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}

	return db, nil
}
