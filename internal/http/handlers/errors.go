package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// writeError maps a domain error onto an HTTP status and JSON body.
// Session guard failures are always 401.
func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotLoggedIn),
		errors.Is(err, domain.ErrLoggedOut),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrInvalidAuthHeader),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrCustomerNotRegistered):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrContactRegistered):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAddressNotOwned):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrStateNotFound),
		errors.Is(err, domain.ErrAddressNotFound),
		errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrCouponNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFieldsMissing),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidContact),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrFirstNameEmpty),
		errors.Is(err, domain.ErrPasswordFieldsEmpty),
		errors.Is(err, domain.ErrIncorrectOldPassword),
		errors.Is(err, domain.ErrAddressFieldsMissing),
		errors.Is(err, domain.ErrInvalidPincode),
		errors.Is(err, domain.ErrAddressIDMissing),
		errors.Is(err, domain.ErrRestaurantIDMissing),
		errors.Is(err, domain.ErrRestaurantNameMissing),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrCategoryIDMissing),
		errors.Is(err, domain.ErrCouponNameEmpty),
		errors.Is(err, domain.ErrNoItemsInOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
