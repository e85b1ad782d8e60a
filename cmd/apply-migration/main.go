package main

import (
	"log"
	"os"

	_ "github.com/lib/pq"

	"dormportal/internal/config"
	"dormportal/internal/database"
)

// Applies a SQL file against the configured database. Used to bootstrap the
// schema: go run ./cmd/apply-migration migrations/schema.sql
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <migration_file.sql>", os.Args[0])
	}

	sqlContent, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read migration file: %v", err)
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := database.Open(cfg.DatabaseURL, 2, 1)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(string(sqlContent)); err != nil {
		log.Fatalf("Failed to execute migration: %v", err)
	}

	log.Printf("Migration %s applied", os.Args[1])
}
