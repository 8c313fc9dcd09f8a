package account

import (
	"coffee_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedAccounts are the fixed first-run credentials: one admin and two
// managers, matching the original deployment.
var seedAccounts = []CreateInput{
	{FIO: "Admin", Email: "admin@coffee.com", Login: "admin", Password: "kofeman", Role: domain.RoleAdmin},
	{FIO: "Manager1", Email: "m1@coffee.com", Login: "manager1", Password: "manager2026", Role: domain.RoleManager},
	{FIO: "Manager2", Email: "m2@coffee.com", Login: "manager2", Password: "manager262", Role: domain.RoleManager},
}

// Bootstrap seeds the staff accounts on first run. Guarded by an
// existence check on the admin role, so re-running is a no-op.
func Bootstrap(db *gorm.DB) error {
	var admins int64
	if err := db.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&admins).Error; err != nil {
		return &domain.StorageError{Op: "bootstrap", Err: err}
	}
	if admins > 0 {
		return nil // Already seeded
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, in := range seedAccounts {
			hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := domain.User{
				FIO:      in.FIO,
				Email:    in.Email,
				Login:    in.Login,
				Password: string(hash),
				Role:     in.Role,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err // Rollback the whole seed
			}
		}
		return nil
	})
	if err != nil {
		return &domain.StorageError{Op: "bootstrap", Err: err}
	}
	logrus.Info("Seed accounts created (1 admin, 2 managers)")
	return nil
}
