package api

import (
	"context"
	"net/http"

	"coffee_backoffice/internal/report"
	"coffee_backoffice/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DashboardHandler serves the order count and revenue sum through a
// short-lived Redis read-through cache. Order mutations drop the key.
func DashboardHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		var cached report.Stats
		if found, err := utils.GetCache(ctx, rdb, utils.DashboardKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"stats": cached, "cached": true})
			return
		}
		stats, err := report.Collect(db)
		if err != nil {
			writeError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.DashboardKey, stats, utils.DashboardTTL)
		c.JSON(http.StatusOK, gin.H{"stats": stats, "cached": false})
	}
}
