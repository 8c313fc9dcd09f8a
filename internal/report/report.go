// Package report aggregates the order ledger for the dashboard.
// Read-only; no side effects.
package report

import (
	"coffee_backoffice/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stats is the dashboard aggregate
type Stats struct {
	TotalOrders  int64           `json:"total_orders"`  // All orders, any status
	TotalRevenue decimal.Decimal `json:"total_revenue"` // Sum of line totals across all orders
}

// Collect counts orders and sums revenue over every order line.
// Cancelled orders are included in the revenue sum, matching the
// original dashboard's unconditional total.
func Collect(db *gorm.DB) (Stats, error) {
	stats := Stats{TotalRevenue: decimal.Zero}
	if err := db.Model(&domain.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return Stats{}, &domain.StorageError{Op: "count orders", Err: err}
	}
	// Low request volume keeps the in-process sum cheap, and it reuses
	// the exact decimal line math instead of a SQL float aggregate.
	var items []domain.OrderItem
	if err := db.Find(&items).Error; err != nil {
		return Stats{}, &domain.StorageError{Op: "sum revenue", Err: err}
	}
	for _, item := range items {
		stats.TotalRevenue = stats.TotalRevenue.Add(item.LineTotal())
	}
	return stats, nil
}
