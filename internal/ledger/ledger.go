// Package ledger is the order core: it creates orders, manages their line
// items with snapshot prices, computes totals and drives the status
// lifecycle. Every mutation runs in its own transaction and locks the
// order row, so concurrent edits of one order serialize instead of
// interleaving.
package ledger

import (
	"errors"
	"time"

	"coffee_backoffice/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockOrder fetches the order row under SELECT ... FOR UPDATE inside tx
func lockOrder(tx *gorm.DB, orderID uint) (domain.Order, error) {
	var order domain.Order
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, &domain.StorageError{Op: "lock order", Err: err}
	}
	return order, nil
}

// Create opens a new order for a client. Status starts at new,
// ShippedAt stays unset until the order enters shipping.
func Create(db *gorm.DB, clientID, userID uint) (domain.Order, error) {
	var order domain.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var client domain.Client
		if err := tx.First(&client, clientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return &domain.StorageError{Op: "create order", Err: err}
		}
		var user domain.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return &domain.StorageError{Op: "create order", Err: err}
		}
		order = domain.Order{
			ClientID:  clientID,
			UserID:    userID,
			Status:    domain.StatusNew,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return &domain.StorageError{Op: "create order", Err: err}
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	logrus.WithFields(logrus.Fields{
		"order_id":  order.ID,
		"client_id": clientID,
		"user_id":   userID,
	}).Info("Order created")
	return order, nil
}

// AddItem appends a line to an open order, snapshotting the product's
// current catalog price into the line. Later catalog price edits never
// touch the snapshot. Closed (delivered/cancelled) orders reject the add.
func AddItem(db *gorm.DB, orderID, productID uint, qty int, discount decimal.Decimal) (domain.OrderItem, error) {
	if qty <= 0 {
		return domain.OrderItem{}, &domain.ValidationError{Field: "qty", Reason: "must be positive"}
	}
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return domain.OrderItem{}, &domain.ValidationError{Field: "discount", Reason: "must be between 0 and 100"}
	}
	var item domain.OrderItem
	err := db.Transaction(func(tx *gorm.DB) error {
		order, err := lockOrder(tx, orderID)
		if err != nil {
			return err
		}
		if order.Status.Terminal() {
			return &domain.StateError{Op: "add item", From: order.Status}
		}
		var product domain.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return &domain.StorageError{Op: "add item", Err: err}
		}
		item = domain.OrderItem{
			OrderID:   orderID,
			ProductID: productID,
			Price:     product.Price, // Snapshot, frozen from here on
			Discount:  discount,
			Qty:       qty,
		}
		if err := tx.Create(&item).Error; err != nil {
			return &domain.StorageError{Op: "add item", Err: err}
		}
		return nil
	})
	if err != nil {
		return domain.OrderItem{}, err
	}
	logrus.WithFields(logrus.Fields{
		"order_id":   orderID,
		"item_id":    item.ID,
		"product_id": productID,
		"qty":        qty,
		"discount":   discount.String(),
		"price":      item.Price.String(),
	}).Info("Order item added")
	return item, nil
}

// RemoveItem deletes a line from an open order. Same closed-order guard
// as AddItem.
func RemoveItem(db *gorm.DB, itemID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var item domain.OrderItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return &domain.StorageError{Op: "remove item", Err: err}
		}
		order, err := lockOrder(tx, item.OrderID)
		if err != nil {
			return err
		}
		if order.Status.Terminal() {
			return &domain.StateError{Op: "remove item", From: order.Status}
		}
		if err := tx.Delete(&item).Error; err != nil {
			return &domain.StorageError{Op: "remove item", Err: err}
		}
		return nil
	})
}

// Transition moves an order along the lifecycle. Only the defined edges
// are legal; anything else is a StateError. First entry into shipping
// stamps ShippedAt exactly once.
func Transition(db *gorm.DB, orderID uint, next domain.OrderStatus) (domain.Order, error) {
	if !next.Valid() {
		return domain.Order{}, &domain.ValidationError{Field: "status", Reason: "unknown status"}
	}
	var order domain.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = lockOrder(tx, orderID)
		if err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(next) {
			return &domain.StateError{Op: "transition", From: order.Status, To: next}
		}
		updates := map[string]any{"status": next}
		if next == domain.StatusShipping && order.ShippedAt == nil {
			now := time.Now()
			order.ShippedAt = &now
			updates["shipped_at"] = now
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return &domain.StorageError{Op: "transition", Err: err}
		}
		order.Status = next
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"status":   next,
	}).Info("Order status changed")
	return order, nil
}

// Get returns an order with its items loaded
func Get(db *gorm.DB, orderID uint) (domain.Order, error) {
	var order domain.Order
	err := db.Preload("Items").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, &domain.StorageError{Op: "get order", Err: err}
	}
	return order, nil
}

// List returns every order with items, oldest first
func List(db *gorm.DB) ([]domain.Order, error) {
	var orders []domain.Order
	if err := db.Preload("Items").Order("id").Find(&orders).Error; err != nil {
		return nil, &domain.StorageError{Op: "list orders", Err: err}
	}
	return orders, nil
}

// OrderTotal recomputes the order total from its stored lines.
// Zero for an order without items; recomputation is idempotent.
func OrderTotal(db *gorm.DB, orderID uint) (decimal.Decimal, error) {
	order, err := Get(db, orderID)
	if err != nil {
		return decimal.Zero, err
	}
	return order.Total(), nil
}
