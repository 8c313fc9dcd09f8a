// Package directory holds the client contact cards referenced by orders.
package directory

import (
	"strings"

	"coffee_backoffice/internal/domain"
	"coffee_backoffice/internal/importer"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AddInput carries the fields of a new client card
type AddInput struct {
	FIO     string
	Email   string
	Address string
	Phone   string
	Note    string // Optional
}

// Add validates and inserts a client card
func Add(db *gorm.DB, in AddInput) (domain.Client, error) {
	for field, value := range map[string]string{
		"fio":     in.FIO,
		"email":   in.Email,
		"address": in.Address,
		"phone":   in.Phone,
	} {
		if strings.TrimSpace(value) == "" {
			return domain.Client{}, &domain.ValidationError{Field: field, Reason: "must not be empty"}
		}
	}
	client := domain.Client{
		FIO:     in.FIO,
		Email:   in.Email,
		Address: in.Address,
		Phone:   in.Phone,
		Note:    in.Note,
	}
	if err := db.Create(&client).Error; err != nil {
		return domain.Client{}, &domain.StorageError{Op: "add client", Err: err}
	}
	return client, nil
}

// ListAll returns every client card in insertion order
func ListAll(db *gorm.DB) ([]domain.Client, error) {
	var clients []domain.Client
	if err := db.Order("id").Find(&clients).Error; err != nil {
		return nil, &domain.StorageError{Op: "list clients", Err: err}
	}
	return clients, nil
}

// ImportRows mirrors the catalog batch policy: per-row validation and
// insert, per-row outcome, no batch abort.
func ImportRows(db *gorm.DB, rows []importer.Row) []importer.Result {
	results := make([]importer.Result, 0, len(rows))
	var ok, failed int
	for _, row := range rows {
		res := importer.Result{Line: row.Line}
		if row.Err != nil {
			res.Error = row.Err.Error()
			failed++
			results = append(results, res)
			continue
		}
		client, err := Add(db, AddInput{
			FIO:     row.Get("fio"),
			Email:   row.Get("email"),
			Address: row.Get("address"),
			Phone:   row.Get("phone"),
			Note:    row.Get("note"),
		})
		if err != nil {
			res.Error = err.Error()
			failed++
		} else {
			res.ID = client.ID
			ok++
		}
		results = append(results, res)
	}
	logrus.WithFields(logrus.Fields{
		"imported": ok,
		"failed":   failed,
	}).Info("Client import finished")
	return results
}
