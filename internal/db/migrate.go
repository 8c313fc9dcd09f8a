package db

import (
	"coffee_backoffice/internal/account"
	"coffee_backoffice/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate creates/updates the five entity tables and seeds the staff
// accounts on first run
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Client{},
		&domain.Order{},
		&domain.OrderItem{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	// One-time idempotent seed of admin + two managers
	if err := account.Bootstrap(db); err != nil {
		logrus.Fatalf("bootstrap failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
