// Command makeadmin promotes an existing user to the admin role, straight
// against the configured database. Intended for bootstrapping the first
// administrator.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"pulse/internal/config"
	"pulse/internal/infra"
	"pulse/internal/models/db_models"
	"pulse/internal/repositories"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: makeadmin <username>")
		os.Exit(1)
	}
	username := os.Args[1]

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := infra.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer infra.CloseDatabase(db)

	ctx := context.Background()
	users := repositories.NewUserRepository(db)

	user, err := users.FindByUsername(ctx, username)
	if err != nil {
		log.Fatalf("Failed to look up user: %v", err)
	}
	if user == nil {
		log.Fatalf("User %q not found", username)
	}

	user.Role = db_models.RoleAdmin
	if err := users.Save(ctx, user); err != nil {
		log.Fatalf("Failed to update role: %v", err)
	}

	fmt.Printf("User %q is now an admin\n", username)
}
