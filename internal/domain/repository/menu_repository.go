package repository

import (
	"context"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMenuItemNotFound is returned when a menu item is not found.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuRepository defines the interface for menu item persistence.
// Menu items are always loaded together with their variations and add-ons.
type MenuRepository interface {
	// ListMenuItems returns a restaurant's menu ordered by category and name.
	ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error)

	// FindMenuItemByID retrieves a menu item by its unique ID.
	FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// SaveMenuItem inserts or updates a menu item and replaces its variations and add-ons.
	SaveMenuItem(ctx context.Context, item *entity.MenuItem) error
}
