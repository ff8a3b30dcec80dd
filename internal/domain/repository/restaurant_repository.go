// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"platter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for restaurant persistence.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrDuplicateRestaurant is returned when a restaurant slug is already taken.
	ErrDuplicateRestaurant = errors.New("restaurant slug already exists")
)

// RestaurantRepository defines the interface for restaurant-related database operations.
type RestaurantRepository interface {
	// ListRestaurants returns restaurants ordered by name. When openOnly is set,
	// closed restaurants are skipped.
	ListRestaurants(ctx context.Context, openOnly bool) ([]*entity.Restaurant, error)

	// FindRestaurantByID retrieves a restaurant by its unique ID.
	FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindRestaurantBySlug retrieves a restaurant by its URL slug.
	FindRestaurantBySlug(ctx context.Context, slug string) (*entity.Restaurant, error)

	// SaveRestaurant inserts the restaurant or updates it when the ID exists.
	SaveRestaurant(ctx context.Context, restaurant *entity.Restaurant) error
}
