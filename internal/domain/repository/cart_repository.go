package repository

import (
	"context"

	"platter/internal/domain/cart"

	"github.com/google/uuid"
)

// CartRepository hands out the cart store owned by each session. Stores are
// never shared between sessions.
type CartRepository interface {
	// GetOrCreate returns the session's store, creating an empty one if needed.
	GetOrCreate(ctx context.Context, sessionID uuid.UUID) *cart.Store

	// Find returns the session's store if it exists.
	Find(ctx context.Context, sessionID uuid.UUID) (*cart.Store, bool)

	// Delete drops the session's store.
	Delete(ctx context.Context, sessionID uuid.UUID)
}
