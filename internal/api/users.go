package api

import (
	"net/http"

	"coffee_backoffice/internal/account"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateUserRequest carries a new staff account (admin-only route)
type CreateUserRequest struct {
	FIO      string `json:"fio" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// ListUsersHandler returns all staff accounts (admin-only)
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := account.List(db)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

// CreateUserHandler adds a staff account (admin-only)
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := account.Create(db, account.CreateInput{
			FIO:      req.FIO,
			Email:    req.Email,
			Login:    req.Login,
			Password: req.Password,
			Role:     req.Role,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}
