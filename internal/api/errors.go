package api

import (
	"errors"
	"net/http"

	"coffee_backoffice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// writeError maps the domain error taxonomy onto HTTP responses.
// Validation, not-found, state and authorization failures carry their
// human-readable reason; storage failures stay generic and go to the log.
func writeError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		stateErr      *domain.StateError
		storageErr    *domain.StorageError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusConflict, gin.H{"error": stateErr.Error()})
	case errors.Is(err, domain.ErrAuthenticationFailed):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, domain.ErrAuthorizationDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.As(err, &storageErr):
		logrus.WithError(storageErr.Err).Error("Storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	default:
		logrus.WithError(err).Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
