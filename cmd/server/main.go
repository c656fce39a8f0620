package main

import (
	"log"
	"os"
	"time"

	"linkden/internal/auth"
	"linkden/internal/db"
	"linkden/internal/policy"
	"linkden/internal/router"
	"linkden/internal/service"
	"linkden/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	database := db.Init()
	st := store.NewGormStore(database)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	tokens := auth.NewJWTTokens(secret, 24*time.Hour)
	resolver := auth.NewResolver(tokens)

	engine := policy.NewEngine(st)
	svc := service.New(st, engine, tokens)

	r := router.New(svc, resolver)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("Server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
