package catalog

import (
	"errors"
	"strings"

	"coffee_backoffice/internal/domain"
	"coffee_backoffice/internal/importer"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AddInput carries the fields of a new catalog entry
type AddInput struct {
	Name      string
	Producer  string
	Unit      string
	Price     decimal.Decimal
	ShortDesc string
	FullDesc  string
}

func (in AddInput) validate() error {
	for field, value := range map[string]string{
		"name":     in.Name,
		"producer": in.Producer,
		"unit":     in.Unit,
	} {
		if strings.TrimSpace(value) == "" {
			return &domain.ValidationError{Field: field, Reason: "must not be empty"}
		}
	}
	if !in.Price.IsPositive() {
		return &domain.ValidationError{Field: "price", Reason: "must be positive"}
	}
	return nil
}

// Add validates and inserts a catalog entry
func Add(db *gorm.DB, in AddInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}
	product := domain.Product{
		Name:      in.Name,
		Producer:  in.Producer,
		Unit:      in.Unit,
		Price:     in.Price,
		ShortDesc: in.ShortDesc,
		FullDesc:  in.FullDesc,
	}
	if err := db.Create(&product).Error; err != nil {
		return domain.Product{}, &domain.StorageError{Op: "add product", Err: err}
	}
	return product, nil
}

// ListActive returns non-deleted products in insertion order
func ListActive(db *gorm.DB) ([]domain.Product, error) {
	var products []domain.Product
	if err := db.Where("deleted = ?", false).Order("id").Find(&products).Error; err != nil {
		return nil, &domain.StorageError{Op: "list products", Err: err}
	}
	return products, nil
}

// Get resolves a product by id, soft-deleted ones included, so historical
// order lines keep resolving after a catalog removal
func Get(db *gorm.DB, id uint) (domain.Product, error) {
	var product domain.Product
	err := db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, &domain.StorageError{Op: "get product", Err: err}
	}
	return product, nil
}

// SoftDelete marks a product deleted. The record stays for order history.
// Idempotent: deleting an already-deleted product succeeds.
func SoftDelete(db *gorm.DB, id uint) error {
	var product domain.Product
	err := db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return &domain.StorageError{Op: "delete product", Err: err}
	}
	if product.Deleted {
		return nil // Already gone from listings
	}
	if err := db.Model(&product).Update("deleted", true).Error; err != nil {
		return &domain.StorageError{Op: "delete product", Err: err}
	}
	return nil
}

// ImportRows validates and inserts raw catalog rows one by one. Each row
// succeeds or fails on its own; a bad row never leaves a partial record
// and never stops the batch.
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
		price, err := decimal.NewFromString(row.Get("price"))
		if err != nil {
			res.Error = (&domain.ValidationError{Field: "price", Reason: "not a number"}).Error()
			failed++
			results = append(results, res)
			continue
		}
		product, err := Add(db, AddInput{
			Name:      row.Get("name"),
			Producer:  row.Get("producer"),
			Unit:      row.Get("unit"),
			Price:     price,
			ShortDesc: row.Get("short_desc"),
			FullDesc:  row.Get("full_desc"),
		})
		if err != nil {
			res.Error = err.Error()
			failed++
		} else {
			res.ID = product.ID
			ok++
		}
		results = append(results, res)
	}
	logrus.WithFields(logrus.Fields{
		"imported": ok,
		"failed":   failed,
	}).Info("Product import finished")
	return results
}
