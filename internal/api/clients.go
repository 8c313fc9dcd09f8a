package api

import (
	"net/http"

	"coffee_backoffice/internal/directory"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateClientRequest carries a manually entered client card
type CreateClientRequest struct {
	FIO     string `json:"fio" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Note    string `json:"note"`
}

// ListClientsHandler returns every client card
func ListClientsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clients, err := directory.ListAll(db)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"clients": clients})
	}
}

// CreateClientHandler adds a client card (admin-only)
func CreateClientHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateClientRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		client, err := directory.Add(db, directory.AddInput{
			FIO:     req.FIO,
			Email:   req.Email,
			Address: req.Address,
			Phone:   req.Phone,
			Note:    req.Note,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, client)
	}
}

// ImportClientsHandler ingests a CSV upload of client cards (admin-only)
// with the same per-row reporting as the product import.
func ImportClientsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, ok := readImportFile(c)
		if !ok {
			return
		}
		results := directory.ImportRows(db, rows)
		c.JSON(http.StatusOK, importSummary(results))
	}
}
