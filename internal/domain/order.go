package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is one step of the order lifecycle
type OrderStatus string

// Order lifecycle: new -> shipping -> delivery -> delivered,
// with cancelled reachable from any non-terminal status.
const (
	StatusNew       OrderStatus = "new"       // Just created, items still being added
	StatusShipping  OrderStatus = "shipping"  // Handed to the warehouse
	StatusDelivery  OrderStatus = "delivery"  // On its way to the client
	StatusDelivered OrderStatus = "delivered" // Terminal: received by the client
	StatusCancelled OrderStatus = "cancelled" // Terminal: called off
)

// nextStatuses lists the legal transition targets per status.
// Terminal statuses have no entry.
var nextStatuses = map[OrderStatus][]OrderStatus{
	StatusNew:      {StatusShipping, StatusCancelled},
	StatusShipping: {StatusDelivery, StatusCancelled},
	StatusDelivery: {StatusDelivered, StatusCancelled},
}

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusShipping, StatusDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether s -> next is a legal lifecycle edge
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range nextStatuses[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Order Model (header; exclusively owns its items)
type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`                      // Primary key
	ClientID  uint        `gorm:"not null;index" json:"client_id"`           // Foreign key to Client
	UserID    uint        `gorm:"not null;index" json:"user_id"`             // Foreign key to the creating User
	Status    OrderStatus `gorm:"size:20;not null;default:new" json:"status"` // Lifecycle status
	CreatedAt time.Time   `json:"created_at"`                                // Creation timestamp
	ShippedAt *time.Time  `json:"shipped_at"`                                // Set once, on first entry into shipping
	// Items are cascade-deleted with the order
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem Model (one product line within an order)
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                         // Primary key
	OrderID   uint            `gorm:"not null;index" json:"order_id"`               // Foreign key to Order
	ProductID uint            `gorm:"not null;index" json:"product_id"`             // Foreign key to Product
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`     // Price snapshot at add time
	Discount  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"discount"` // Discount percent, 0..100
	Qty       int             `gorm:"not null" json:"qty"`                          // Quantity, positive
}

var oneHundred = decimal.NewFromInt(100)

// LineTotal computes price * qty * (1 - discount/100), rounded to two
// decimal places. Decimal arithmetic keeps many-line orders free of
// float rounding drift.
func (i OrderItem) LineTotal() decimal.Decimal {
	qty := decimal.NewFromInt(int64(i.Qty))
	factor := decimal.NewFromInt(1).Sub(i.Discount.Div(oneHundred))
	return i.Price.Mul(qty).Mul(factor).Round(2)
}

// Total sums the line totals of the loaded items.
// Zero for an order without items.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}
