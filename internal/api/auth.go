package api

import (
	"net/http"

	"coffee_backoffice/internal/account"
	"coffee_backoffice/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LoginRequest carries staff credentials
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`    // Login handle
	Password string `json:"password" binding:"required"` // Plaintext password, verified against the stored hash
}

// AuthResponse returns the session token and the identity behind it
type AuthResponse struct {
	Token string `json:"token"` // JWT session token
	ID    uint   `json:"id"`    // Staff account id
	FIO   string `json:"fio"`   // Full name, for the UI header
	Role  string `json:"role"`  // admin or manager
}

// LoginHandler authenticates a staff account and issues a JWT
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := account.Authenticate(db, req.Login, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		token, err := utils.GenerateJWT(user.ID, user.Role, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token, ID: user.ID, FIO: user.FIO, Role: user.Role})
	}
}
