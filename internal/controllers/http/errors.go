package http

import (
	"errors"
	"net/http"

	"commerce-core/internal/services"

	"github.com/gin-gonic/gin"
)

// errorStatus translates the closed service error sets onto HTTP statuses:
// not-found kinds to 404, client faults to 400, bad credentials to 401,
// everything unclassified to 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrTraderNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrOrderValidation),
		errors.Is(err, services.ErrDuplicatePayment),
		errors.Is(err, services.ErrInvalidPaymentMethod),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrPaymentProcessing),
		errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrTraderExists):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}
