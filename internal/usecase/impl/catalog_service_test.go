package impl

import (
	"context"
	"testing"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	mockRepo "platter/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListRestaurants(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	srv := NewCatalogService(restaurantRepo, mockRepo.NewMockMenuRepository(t))
	ctx := context.Background()

	restaurants := []*entity.Restaurant{{ID: uuid.New(), Name: "Bombay Canteen", IsOpen: true}}
	restaurantRepo.EXPECT().ListRestaurants(ctx, true).Return(restaurants, nil)
	restaurantRepo.EXPECT().ListRestaurants(ctx, false).Return(nil, errors.New("connection refused"))

	got, err := srv.ListRestaurants(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, restaurants, got)

	_, err = srv.ListRestaurants(ctx, false)
	assert.ErrorContains(t, err, "failed to list restaurants")
}

func TestCatalogService_GetRestaurant_NotFound(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	srv := NewCatalogService(restaurantRepo, mockRepo.NewMockMenuRepository(t))
	ctx := context.Background()
	id := uuid.New()

	restaurantRepo.EXPECT().FindRestaurantByID(ctx, id).Return(nil, repository.ErrRestaurantNotFound)

	_, err := srv.GetRestaurant(ctx, id)
	assert.Equal(t, domainerrors.ErrRestaurantNotFound, err)
}

func TestCatalogService_GetMenu(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	srv := NewCatalogService(restaurantRepo, menuRepo)
	ctx := context.Background()

	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Bombay Canteen"}
	items := []*entity.MenuItem{testMenuItem(restaurant.ID)}

	restaurantRepo.EXPECT().FindRestaurantByID(ctx, restaurant.ID).Return(restaurant, nil)
	menuRepo.EXPECT().ListMenuItems(ctx, restaurant.ID).Return(items, nil)

	menu, err := srv.GetMenu(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, restaurant, menu.Restaurant)
	assert.Equal(t, items, menu.Items)
}

func TestCatalogService_GetMenu_UnknownRestaurantSkipsMenu(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	srv := NewCatalogService(restaurantRepo, mockRepo.NewMockMenuRepository(t))
	ctx := context.Background()
	id := uuid.New()

	restaurantRepo.EXPECT().FindRestaurantByID(ctx, id).Return(nil, repository.ErrRestaurantNotFound)

	menu, err := srv.GetMenu(ctx, id)
	assert.Nil(t, menu)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}
