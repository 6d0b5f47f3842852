package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/supermax-promo/cupom-backend/internal/services"
)

// respondServiceError translates service errors into HTTP responses.
// Anything unrecognized is a backend failure and must not leak past a
// generic 500.
func respondServiceError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verrs})
		return
	}

	switch {
	case errors.Is(err, services.ErrDuplicateRegistration):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmptyPool):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyRevealed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrCouponNotFound),
		errors.Is(err, services.ErrScratchNotFound),
		errors.Is(err, services.ErrWinnerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSequenceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not generate a coupon number, please try again"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
