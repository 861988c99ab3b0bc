package main

import (
	"log"

	"github.com/retroplate/recipe-explorer/backend/config"
	"github.com/retroplate/recipe-explorer/backend/internal/database"
)

// Seeds the starter catalog into an empty database. Safe to run repeatedly
// and alongside the API server, which seeds on boot as well.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Migration error: %v", err)
	}
	if err := database.SeedIfEmpty(db); err != nil {
		log.Fatalf("Seed error: %v", err)
	}
}
