package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/models"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/store"
)

// RunMigrations creates the identity and document tables. GORM
// auto-migration covers both dialects; the documents table definition lives
// with the store implementation.
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running %s migrations", db.Dialector.Name())

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return err
	}
	return store.NewGormClient(db).Migrate()
}
