package repository

import (
	"context"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// CreateOrder persists a new order together with its lines.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order and its lines, always from the primary.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus moves an order to a new status.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
