package usecase

import (
	"context"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantMenu is a restaurant together with its menu.
type RestaurantMenu struct {
	Restaurant *entity.Restaurant `json:"restaurant"`
	Items      []*entity.MenuItem `json:"items"`
}

// CatalogUsecase serves the restaurant and menu browsing pages.
type CatalogUsecase interface {
	// ListRestaurants returns restaurants, optionally only open ones.
	ListRestaurants(ctx context.Context, openOnly bool) ([]*entity.Restaurant, error)

	// GetRestaurant returns a single restaurant.
	GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// GetMenu returns the restaurant and its menu items.
	GetMenu(ctx context.Context, restaurantID uuid.UUID) (*RestaurantMenu, error)
}
