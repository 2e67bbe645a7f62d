package main

import (
	"fmt"
	"log"

	"meetline/internal/config"
	"meetline/internal/database"
)

// Applies the schema migrations and exits. Useful for provisioning a fresh
// database before the API is started.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	fmt.Printf("Database ready: %s\n", cfg.Database.URL)
}
