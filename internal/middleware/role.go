package middleware

import (
	"net/http"

	"coffee_backoffice/internal/account"
	"coffee_backoffice/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireRole guards a route group with the single centralized role
// check (account.Authorize). Role comes from the token claims set by
// JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, okID := c.Get("userID")
		roleVal, okRole := c.Get("role")
		if !okID || !okRole {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user := domain.User{ID: userID.(uint), Role: roleVal.(string)}
		if err := account.Authorize(user, role); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
