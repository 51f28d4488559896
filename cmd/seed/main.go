package main

import (
	"log"

	"phPortfolio/internal/config"
	"phPortfolio/internal/database"
)

// cmd/seed loads the demo portfolio content into an empty database. Tables
// that already hold rows are left alone, so it is safe to rerun.
func main() {
	cfg := config.MustLoad()

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	if err := database.SeedDemoContent(db); err != nil {
		log.Fatalf("seed demo content: %v", err)
	}
	log.Printf("demo content seeded")
}
