package cart

import (
	"platter/internal/errors"
)

var (
	// ErrInvalidLine is returned when a line descriptor is missing its identity,
	// has a non-positive quantity, or a negative unit price.
	ErrInvalidLine = errors.New("invalid cart line")

	// ErrRestaurantMismatch is returned when a line from another restaurant is
	// added to a non-empty cart.
	ErrRestaurantMismatch = errors.New("cart already holds items from another restaurant")

	// ErrQuantityLimit is returned when a merge would push a line past the
	// per-line quantity cap.
	ErrQuantityLimit = errors.New("cart line quantity limit reached")

	// ErrCartFull is returned when a new line would exceed the store's line limit.
	ErrCartFull = errors.New("cart line limit reached")

	// ErrNegativeAmount marks a pricing input or output below zero. It always
	// indicates corrupt upstream data.
	ErrNegativeAmount = errors.New("negative amount in pricing")
)
