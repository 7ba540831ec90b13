package main

import (
	"log"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/config"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to open ORM connection: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations complete")
}
