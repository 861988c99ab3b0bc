package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/retroplate/recipe-explorer/backend/internal/models"
)

// AutoMigrate creates or updates the catalog tables.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Recipe{},
		&models.Favorite{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}
