package handlers

import (
	"errors"
	"net/http"

	"github.com/billyhq/billing_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// GetHealth reports service liveness.
func GetHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// respondError maps application errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, apperrors.ErrDuplicateEvent):
		c.JSON(http.StatusConflict, gin.H{"error": "event already recorded"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, apperrors.ErrInvalidCallbackPayload),
		errors.Is(err, apperrors.ErrInvalidURIFormat),
		errors.Is(err, apperrors.ErrInvalidFundingInstrument),
		errors.Is(err, apperrors.ErrInvalidCustomer),
		errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
