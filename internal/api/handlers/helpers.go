package handlers

import (
	"errors"
	"net/http"

	"delivery-ops-api-server/internal/apperr"

	"github.com/gin-gonic/gin"
)

// maxListRows caps every listing endpoint.
const maxListRows = 200

// respondError maps the apperr taxonomy to HTTP codes. Everything else is a
// storage or internal failure.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.Invalid):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.Unauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.Forbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperr.NotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
