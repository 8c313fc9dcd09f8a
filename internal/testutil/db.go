// Package testutil opens throwaway databases and fixture rows for
// package tests.
package testutil

import (
	"testing"

	"coffee_backoffice/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns an isolated in-memory sqlite database with the full
// schema migrated. Capped at one connection so every query in the test
// sees the same in-memory database.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Client{},
		&domain.Order{},
		&domain.OrderItem{},
	))
	return db
}

// SeedUser inserts a staff account whose password is "secret"
func SeedUser(t *testing.T, db *gorm.DB, login, role string) domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := domain.User{
		FIO:      "Test " + login,
		Email:    login + "@coffee.test",
		Login:    login,
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// SeedProduct inserts a catalog entry at the given price
func SeedProduct(t *testing.T, db *gorm.DB, name, price string) domain.Product {
	t.Helper()
	product := domain.Product{
		Name:     name,
		Producer: "Roastery",
		Unit:     "kg",
		Price:    decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// SeedClient inserts a client card
func SeedClient(t *testing.T, db *gorm.DB, fio string) domain.Client {
	t.Helper()
	client := domain.Client{
		FIO:     fio,
		Email:   "client@coffee.test",
		Address: "1 Harbor St",
		Phone:   "+1-555-0100",
	}
	require.NoError(t, db.Create(&client).Error)
	return client
}
