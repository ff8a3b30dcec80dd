package postgres

import (
	"context"
	"testing"

	"platter/internal/domain/entity"
	"platter/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRestaurant(t *testing.T, repo repository.RestaurantRepository, slug, name string, open bool) *entity.Restaurant {
	t.Helper()

	restaurant := &entity.Restaurant{
		Slug:             slug,
		Name:             name,
		Cuisine:          "North Indian",
		Latitude:         12.9716,
		Longitude:        77.5946,
		DeliveryRadiusKm: 5,
		IsOpen:           open,
	}
	require.NoError(t, repo.SaveRestaurant(context.Background(), restaurant))
	require.NotEqual(t, uuid.Nil, restaurant.ID)

	return restaurant
}

func TestRestaurantRepository_SaveAndFind(t *testing.T) {
	repo := NewRestaurantRepository(newTestDB(t))
	ctx := context.Background()

	saved := seedRestaurant(t, repo, "spice-route", "Spice Route", true)

	byID, err := repo.FindRestaurantByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spice Route", byID.Name)
	assert.True(t, byID.IsOpen)
	assert.InDelta(t, 5.0, byID.DeliveryRadiusKm, 1e-9)

	bySlug, err := repo.FindRestaurantBySlug(ctx, "spice-route")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, bySlug.ID)
}

func TestRestaurantRepository_ClosedRestaurantStaysClosed(t *testing.T) {
	repo := NewRestaurantRepository(newTestDB(t))

	saved := seedRestaurant(t, repo, "night-owl", "Night Owl", false)

	found, err := repo.FindRestaurantByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.False(t, found.IsOpen)
}

func TestRestaurantRepository_NotFound(t *testing.T) {
	repo := NewRestaurantRepository(newTestDB(t))

	_, err := repo.FindRestaurantByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)

	_, err = repo.FindRestaurantBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
}

func TestRestaurantRepository_DuplicateSlug(t *testing.T) {
	repo := NewRestaurantRepository(newTestDB(t))
	seedRestaurant(t, repo, "dup", "First", true)

	err := repo.SaveRestaurant(context.Background(), &entity.Restaurant{Slug: "dup", Name: "Second"})
	assert.ErrorIs(t, err, repository.ErrDuplicateRestaurant)
}

func TestRestaurantRepository_ListOpenOnly(t *testing.T) {
	repo := NewRestaurantRepository(newTestDB(t))
	seedRestaurant(t, repo, "b", "Bombay Bites", true)
	seedRestaurant(t, repo, "a", "Abode", false)
	seedRestaurant(t, repo, "c", "Chaat Corner", true)

	all, err := repo.ListRestaurants(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Abode", all[0].Name)

	open, err := repo.ListRestaurants(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "Bombay Bites", open[0].Name)
	assert.Equal(t, "Chaat Corner", open[1].Name)
}

func TestRestaurantRepository_UpdateExisting(t *testing.T) {
	repo := NewRestaurantRepository(newTestDB(t))
	saved := seedRestaurant(t, repo, "tandoor", "Tandoor", true)

	saved.IsOpen = false
	saved.Name = "Tandoor House"
	require.NoError(t, repo.SaveRestaurant(context.Background(), saved))

	found, err := repo.FindRestaurantByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tandoor House", found.Name)
	assert.False(t, found.IsOpen)
}
