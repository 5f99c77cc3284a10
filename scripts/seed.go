//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hugh/gatekeeper/internal/auth"
	"github.com/hugh/gatekeeper/internal/database"
	"github.com/hugh/gatekeeper/pkg/config"
	"github.com/hugh/gatekeeper/pkg/util"
	"github.com/joho/godotenv"
)

// Bootstraps the initial admin account. The database's single-admin
// index rejects a second run against a store that already has one.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	authService := auth.NewService(db, auth.NewPasswordPolicy(cfg.Password.MinLength))

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")

	if email == "" {
		email = "admin@example.com"
	}
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	user, err := authService.CreateSuperuser(context.Background(), email, password)
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Printf("created admin %s (%s)\n", user.Email, user.ID)
}
