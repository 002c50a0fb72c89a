package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"mealbridge/backend/internal/config"
	"mealbridge/backend/internal/database"
	"mealbridge/backend/internal/handlers"
	"mealbridge/backend/internal/identity"
	"mealbridge/backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	verifier, err := identity.NewFirebaseVerifier(context.Background(), cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize identity verifier: %v", err)
	}

	stores := store.NewMongoStores(client.Database(cfg.Mongo.DBName))
	handler := handlers.NewHandler(stores)
	router := handlers.NewRouter(handler, verifier, cfg.Client.URL)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
