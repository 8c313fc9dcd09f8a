package api

import (
	"net/http"
	"strconv"

	"coffee_backoffice/internal/catalog"
	"coffee_backoffice/internal/importer"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateProductRequest carries a manually entered catalog record
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	Producer  string          `json:"producer" binding:"required"`
	Unit      string          `json:"unit" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	ShortDesc string          `json:"short_desc"`
	FullDesc  string          `json:"full_desc"`
}

// ListProductsHandler returns the active (non-deleted) catalog
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListActive(db)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// CreateProductHandler adds a catalog record (admin-only)
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		product, err := catalog.Add(db, catalog.AddInput{
			Name:      req.Name,
			Producer:  req.Producer,
			Unit:      req.Unit,
			Price:     req.Price,
			ShortDesc: req.ShortDesc,
			FullDesc:  req.FullDesc,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// DeleteProductHandler soft-deletes a catalog record (admin-only).
// Historical order lines keep their snapshot of the product.
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		if err := catalog.SoftDelete(db, uint(id)); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// ImportProductsHandler ingests a CSV upload (admin-only). The response
// reports every row's outcome instead of one pass/fail.
func ImportProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, ok := readImportFile(c)
		if !ok {
			return
		}
		results := catalog.ImportRows(db, rows)
		c.JSON(http.StatusOK, importSummary(results))
	}
}

// readImportFile pulls the "file" form field and parses it as CSV.
// Responds with 400 itself when the upload is unusable.
func readImportFile(c *gin.Context) ([]importer.Row, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return nil, false
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file upload"})
		return nil, false
	}
	defer f.Close()
	rows, err := importer.Parse(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed CSV: " + err.Error()})
		return nil, false
	}
	return rows, true
}

// importSummary folds per-row results into the response body
func importSummary(results []importer.Result) gin.H {
	var imported, failed int
	for _, r := range results {
		if r.Error == "" {
			imported++
		} else {
			failed++
		}
	}
	return gin.H{"imported": imported, "failed": failed, "rows": results}
}
