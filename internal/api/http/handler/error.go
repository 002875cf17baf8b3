package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskvault/taskvault-server/internal/model"
)

// handleError terminates the request with the status matching the error.
// Bodies stay empty: clients get a code, never internal detail.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrEmailTaken),
		errors.Is(err, model.ErrInvalidCredentials):
		c.AbortWithStatus(http.StatusBadRequest)
	case errors.Is(err, model.ErrUnauthenticated),
		errors.Is(err, model.ErrInvalidToken):
		c.AbortWithStatus(http.StatusUnauthorized)
	case errors.Is(err, model.ErrNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	default:
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
