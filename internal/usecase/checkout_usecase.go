package usecase

import (
	"context"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput carries the customer details collected at checkout.
type CheckoutInput struct {
	Mode            entity.DeliveryMode
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	Latitude        *float64
	Longitude       *float64
	Note            string
}

// CheckoutUsecase turns a session's cart into an order.
type CheckoutUsecase interface {
	// Checkout places an order for the session's cart and removes the placed lines.
	Checkout(ctx context.Context, sessionID uuid.UUID, input *CheckoutInput) (*entity.Order, error)

	// GetOrder returns an order placed by the session. Orders of other
	// sessions are reported as not found.
	GetOrder(ctx context.Context, sessionID, orderID uuid.UUID) (*entity.Order, error)

	// PickupQR renders the QR code for one of the session's pickup orders as PNG.
	PickupQR(ctx context.Context, sessionID, orderID uuid.UUID) ([]byte, error)
}
