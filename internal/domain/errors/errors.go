package errors

import (
	"net/http"

	"platter/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Cart-related errors
	ErrCartLineInvalid = NewBaseError(
		http.StatusBadRequest,
		"CART_LINE_INVALID",
		"The cart line is invalid",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusUnprocessableEntity,
		"CART_EMPTY",
		"The cart is empty",
		"",
	)

	ErrCartRestaurantMismatch = NewBaseError(
		http.StatusConflict,
		"CART_RESTAURANT_MISMATCH",
		"The cart already contains items from another restaurant",
		"",
	)

	ErrCartQuantityLimit = NewBaseError(
		http.StatusUnprocessableEntity,
		"CART_QUANTITY_LIMIT",
		"The cart line cannot hold a larger quantity",
		"",
	)

	ErrCartFull = NewBaseError(
		http.StatusUnprocessableEntity,
		"CART_FULL",
		"The cart cannot hold any more distinct items",
		"",
	)

	// Catalog-related errors
	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		"",
	)

	ErrRestaurantClosed = NewBaseError(
		http.StatusConflict,
		"RESTAURANT_CLOSED",
		"The restaurant is not accepting orders right now",
		"",
	)

	ErrMenuItemNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_ITEM_NOT_FOUND",
		"Menu item not found",
		"",
	)

	ErrVariationNotFound = NewBaseError(
		http.StatusBadRequest,
		"VARIATION_NOT_FOUND",
		"The selected variation does not belong to this item",
		"",
	)

	ErrAddOnNotFound = NewBaseError(
		http.StatusBadRequest,
		"ADD_ON_NOT_FOUND",
		"A selected add-on does not belong to this item",
		"",
	)

	ErrItemUnavailable = NewBaseError(
		http.StatusConflict,
		"ITEM_UNAVAILABLE",
		"The item is currently unavailable",
		"",
	)

	// Checkout-related errors
	ErrDeliveryOutOfRange = NewBaseError(
		http.StatusUnprocessableEntity,
		"DELIVERY_OUT_OF_RANGE",
		"The delivery address is outside the restaurant's delivery area",
		"",
	)

	ErrDeliveryLocationRequired = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_LOCATION_REQUIRED",
		"Delivery orders need an address and coordinates",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrPickupOnly = NewBaseError(
		http.StatusConflict,
		"PICKUP_ONLY",
		"Pickup codes exist only for pickup orders",
		"",
	)

	ErrPricingIntegrity = NewBaseError(
		http.StatusInternalServerError,
		"PRICING_INTEGRITY",
		"Unable to price the cart",
		"",
	)

	// Session-related errors
	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid or expired cart session",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
