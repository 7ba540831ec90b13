package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/config"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/api"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/database"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/router"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/server"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/service"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	healthDB, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	gormDB, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to open ORM connection: %v", err)
	}
	if err := database.RunMigrations(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	docStore := store.NewGormClient(gormDB)
	sessions := service.NewRedisSessionStore(redisClient)

	authService := service.NewAuthService(gormDB, sessions, cfg.JWTSecret)
	profileService := service.NewProfileService(docStore, cfg.ProfilesCollection)
	recipeService := service.NewRecipeService(docStore, cfg.RecipesCollection)

	var imageService service.IImageService
	if cfg.AWSRegion != "" {
		s3Cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Printf("Avatar storage disabled: %v", err)
		} else {
			if err := s3Cfg.SetupBucketPolicy(context.Background()); err != nil {
				log.Printf("Could not apply avatar bucket policy: %v", err)
			}
			imageService = service.NewImageService(s3Cfg)
		}
	}

	engine := router.SetupRouter(
		api.NewAuthHandler(authService, profileService),
		api.NewRecipeHandler(recipeService),
		api.NewProfileHandler(profileService, imageService),
		authService,
		healthDB,
	)

	srv := server.New(engine, cfg.ServerHost+":"+cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
