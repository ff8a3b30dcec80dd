package usecase

import (
	"context"
	"fmt"

	"platter/internal/domain/service"

	"github.com/pkg/errors"
)

// KitchenUsecase forwards placed orders to the restaurant.
type KitchenUsecase interface {
	// ForwardOrder alerts the restaurant and marks the order as sent.
	// Orders already sent are skipped.
	ForwardOrder(ctx context.Context, event *service.OrderPlacedEvent) error
}

// RetryableError marks a failure that may succeed on redelivery.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}

// IsRetryableError reports whether err or anything it wraps is retryable.
func IsRetryableError(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}
