package domain

import "github.com/shopspring/decimal"

// Product Model (catalog entry)
type Product struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                  // Primary key
	Name      string          `gorm:"size:100;not null" json:"name"`         // Product name
	Producer  string          `gorm:"size:100;not null" json:"producer"`     // Producer / roaster
	Unit      string          `gorm:"size:10;not null" json:"unit"`          // Unit of measure (kg, pack, ...)
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // Current catalog price
	ShortDesc string          `gorm:"size:255" json:"short_desc"`            // Short description
	FullDesc  string          `gorm:"type:text" json:"full_desc"`            // Full description
	Deleted   bool            `gorm:"not null;default:false" json:"deleted"` // Soft delete flag
}
