package api

import (
	"context"
	"net/http"
	"strconv"

	"coffee_backoffice/internal/domain"
	"coffee_backoffice/internal/ledger"
	"coffee_backoffice/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateOrderRequest opens an order for a client; the creator comes from
// the authenticated identity, not the request body
type CreateOrderRequest struct {
	ClientID uint `json:"client_id" binding:"required"`
}

// AddItemRequest appends a product line to an order
type AddItemRequest struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Qty       int             `json:"qty" binding:"required"`
	Discount  decimal.Decimal `json:"discount"` // Percent, 0..100; defaults to 0
}

// TransitionRequest moves an order along the lifecycle
type TransitionRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

// orderView is an order plus its recomputed total
type orderView struct {
	domain.Order
	Total decimal.Decimal `json:"total"`
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// ListOrdersHandler returns every order with items and totals
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := ledger.List(db)
		if err != nil {
			writeError(c, err)
			return
		}
		views := make([]orderView, len(orders))
		for i, o := range orders {
			views[i] = orderView{Order: o, Total: o.Total()}
		}
		c.JSON(http.StatusOK, gin.H{"orders": views})
	}
}

// GetOrderHandler returns one order with items and total
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := pathID(c, "id")
		if !ok {
			return
		}
		order, err := ledger.Get(db, orderID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView{Order: order, Total: order.Total()})
	}
}

// CreateOrderHandler opens a new order; creator is the current identity
func CreateOrderHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		order, err := ledger.Create(db, req.ClientID, userID.(uint))
		if err != nil {
			writeError(c, err)
			return
		}
		utils.InvalidateDashboard(context.Background(), rdb)
		c.JSON(http.StatusCreated, order)
	}
}

// AddItemHandler appends a line to an order at the product's current
// price, frozen into the line from then on
func AddItemHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		item, err := ledger.AddItem(db, orderID, req.ProductID, req.Qty, req.Discount)
		if err != nil {
			writeError(c, err)
			return
		}
		utils.InvalidateDashboard(context.Background(), rdb)
		c.JSON(http.StatusCreated, gin.H{"item": item, "line_total": item.LineTotal()})
	}
}

// RemoveItemHandler deletes a line from an open order
func RemoveItemHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, ok := pathID(c, "itemID")
		if !ok {
			return
		}
		if err := ledger.RemoveItem(db, itemID); err != nil {
			writeError(c, err)
			return
		}
		utils.InvalidateDashboard(context.Background(), rdb)
		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}

// TransitionHandler moves an order along the lifecycle
func TransitionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req TransitionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		order, err := ledger.Transition(db, orderID, req.Status)
		if err != nil {
			writeError(c, err)
			return
		}
		utils.InvalidateDashboard(context.Background(), rdb)
		c.JSON(http.StatusOK, order)
	}
}
