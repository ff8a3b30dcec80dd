package usecase

import (
	"context"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// AddItemInput describes a configured product chosen on the product page.
type AddItemInput struct {
	MenuItemID  uuid.UUID
	VariationID uuid.UUID
	AddOnIDs    []uuid.UUID
	Note        string
	Quantity    int
}

// AmountDisplay holds amounts formatted for display.
type AmountDisplay struct {
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"delivery_fee"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
}

// Quote is the priced view of a cart for one delivery mode. Totals are
// rounded to the minor unit; Display carries the same amounts formatted
// with the currency symbol.
type Quote struct {
	Mode     entity.DeliveryMode  `json:"mode"`
	Currency string               `json:"currency"`
	Totals   entity.PricingResult `json:"totals"`
	Display  AmountDisplay        `json:"display"`
}

// CartView is a cart snapshot together with its quote.
type CartView struct {
	Lines     []entity.LineItem `json:"lines"`
	ItemCount int               `json:"item_count"`
	Quote     *Quote            `json:"quote"`
}

// CartUsecase drives a session's cart. Line mutations on unknown line IDs
// are silent no-ops.
type CartUsecase interface {
	// AddItem resolves the product from the catalog and adds it to the cart.
	AddItem(ctx context.Context, sessionID uuid.UUID, input *AddItemInput) (*entity.LineItem, error)

	// SetQuantity sets a line's quantity; zero or less removes the line.
	SetQuantity(ctx context.Context, sessionID uuid.UUID, lineID string, quantity int) error

	// AdjustQuantity changes a line's quantity by delta.
	AdjustQuantity(ctx context.Context, sessionID uuid.UUID, lineID string, delta int) error

	// RemoveLine deletes a line.
	RemoveLine(ctx context.Context, sessionID uuid.UUID, lineID string) error

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, sessionID uuid.UUID) error

	// GetCart returns the cart snapshot priced for mode.
	GetCart(ctx context.Context, sessionID uuid.UUID, mode entity.DeliveryMode) (*CartView, error)

	// Quote prices the cart for mode without returning its lines.
	Quote(ctx context.Context, sessionID uuid.UUID, mode entity.DeliveryMode) (*Quote, error)
}
