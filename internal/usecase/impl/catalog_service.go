package impl

import (
	"context"
	"fmt"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type catalogService struct {
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(restaurantRepo repository.RestaurantRepository, menuRepo repository.MenuRepository) usecase.CatalogUsecase {
	return &catalogService{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
	}
}

// ListRestaurants returns restaurants, optionally only open ones.
func (s *catalogService) ListRestaurants(ctx context.Context, openOnly bool) ([]*entity.Restaurant, error) {
	restaurants, err := s.restaurantRepo.ListRestaurants(ctx, openOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	return restaurants, nil
}

// GetRestaurant returns a single restaurant.
func (s *catalogService) GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, fmt.Errorf("failed to find restaurant: %w", err)
	}

	return restaurant, nil
}

// GetMenu returns the restaurant and its menu items.
func (s *catalogService) GetMenu(ctx context.Context, restaurantID uuid.UUID) (*usecase.RestaurantMenu, error) {
	restaurant, err := s.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	items, err := s.menuRepo.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return &usecase.RestaurantMenu{
		Restaurant: restaurant,
		Items:      items,
	}, nil
}
