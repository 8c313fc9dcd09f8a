package main

import (
	"coffee_backoffice/internal/config" // Custom import path (Config)
	"coffee_backoffice/internal/db"     // Custom import path (Database)
)

// Main entry point for migration and first-run account seed
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())
}
