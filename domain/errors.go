package domain

import "errors"

// Signup errors
var (
	ErrContactRegistered = errors.New("contact number is already registered")
	ErrFieldsMissing     = errors.New("except last name all fields should be filled")
	ErrInvalidEmail      = errors.New("invalid email-id format")
	ErrInvalidContact    = errors.New("invalid contact number")
	ErrWeakPassword      = errors.New("weak password")
)

// Authentication errors
var (
	ErrCustomerNotRegistered = errors.New("contact number has not been registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidAuthHeader     = errors.New("incorrect format of decoded customer name and password")
)

// Session guard errors, raised in this order by every authenticated call:
// not logged in, then logged out, then expired.
var (
	ErrNotLoggedIn    = errors.New("customer is not logged in")
	ErrLoggedOut      = errors.New("customer is logged out, log in again to access this endpoint")
	ErrSessionExpired = errors.New("session is expired, log in again to access this endpoint")
)

// Profile update errors
var (
	ErrFirstNameEmpty       = errors.New("first name field should not be empty")
	ErrPasswordFieldsEmpty  = errors.New("no field should be empty")
	ErrIncorrectOldPassword = errors.New("incorrect old password")
)

// Address errors
var (
	ErrAddressFieldsMissing = errors.New("no field can be empty")
	ErrInvalidPincode       = errors.New("invalid pincode")
	ErrStateNotFound        = errors.New("no state by this id")
	ErrAddressNotFound      = errors.New("no address by this id")
	ErrAddressIDMissing     = errors.New("address id can not be empty")
	ErrAddressNotOwned      = errors.New("address does not belong to this customer")
)

// Catalog errors
var (
	ErrRestaurantNotFound    = errors.New("no restaurant by this id")
	ErrRestaurantIDMissing   = errors.New("restaurant id field should not be empty")
	ErrRestaurantNameMissing = errors.New("restaurant name field should not be empty")
	ErrInvalidRating         = errors.New("invalid customer rating")
	ErrCategoryNotFound      = errors.New("no category by this id")
	ErrCategoryIDMissing     = errors.New("category id field should not be empty")
	ErrItemNotFound          = errors.New("no item by this id exists")
)

// Order errors
var (
	ErrCouponNotFound  = errors.New("no coupon by this name")
	ErrCouponNameEmpty = errors.New("coupon name field should not be empty")
	ErrNoItemsInOrder  = errors.New("an order must contain at least one item")
)
