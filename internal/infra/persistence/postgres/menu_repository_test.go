package postgres

import (
	"context"
	"testing"

	"platter/internal/domain/entity"
	"platter/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuItem(restaurantID uuid.UUID, name, category string) *entity.MenuItem {
	return &entity.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Description:  "Slow cooked and finished with butter",
		Category:     category,
		IsAvailable:  true,
		Variations: []entity.Variation{
			{Name: "Half", Price: decimal.NewFromInt(220)},
			{Name: "Full", Price: decimal.NewFromInt(420)},
		},
		AddOns: []entity.AddOn{
			{Name: "Extra cheese", Price: decimal.NewFromInt(40)},
		},
	}
}

func TestMenuRepository_SaveAndFind(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurant(t, NewRestaurantRepository(db), "r1", "R1", true)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	item := newMenuItem(restaurant.ID, "Butter Chicken", "Mains")
	require.NoError(t, repo.SaveMenuItem(ctx, item))
	require.NotEqual(t, uuid.Nil, item.ID)
	require.NotEqual(t, uuid.Nil, item.Variations[0].ID)
	require.NotEqual(t, uuid.Nil, item.AddOns[0].ID)

	found, err := repo.FindMenuItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Butter Chicken", found.Name)
	require.Len(t, found.Variations, 2)
	assert.Equal(t, "Half", found.Variations[0].Name)
	assert.Equal(t, "Full", found.Variations[1].Name)
	assert.True(t, found.Variations[1].Price.Equal(decimal.NewFromInt(420)))
	require.Len(t, found.AddOns, 1)
	assert.Equal(t, item.AddOns[0].ID, found.AddOns[0].ID)
}

func TestMenuRepository_SaveReplacesOptions(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurant(t, NewRestaurantRepository(db), "r1", "R1", true)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	item := newMenuItem(restaurant.ID, "Paneer Tikka", "Starters")
	require.NoError(t, repo.SaveMenuItem(ctx, item))
	keptID := item.Variations[1].ID

	item.Variations = item.Variations[1:]
	item.AddOns = nil
	require.NoError(t, repo.SaveMenuItem(ctx, item))

	found, err := repo.FindMenuItemByID(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, found.Variations, 1)
	assert.Equal(t, keptID, found.Variations[0].ID)
	assert.Empty(t, found.AddOns)
}

func TestMenuRepository_ListOrdersByCategoryThenName(t *testing.T) {
	db := newTestDB(t)
	restaurants := NewRestaurantRepository(db)
	r1 := seedRestaurant(t, restaurants, "r1", "R1", true)
	r2 := seedRestaurant(t, restaurants, "r2", "R2", true)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveMenuItem(ctx, newMenuItem(r1.ID, "Naan", "Breads")))
	require.NoError(t, repo.SaveMenuItem(ctx, newMenuItem(r1.ID, "Dal Makhani", "Mains")))
	require.NoError(t, repo.SaveMenuItem(ctx, newMenuItem(r1.ID, "Butter Chicken", "Mains")))
	require.NoError(t, repo.SaveMenuItem(ctx, newMenuItem(r2.ID, "Dosa", "Mains")))

	items, err := repo.ListMenuItems(ctx, r1.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Naan", items[0].Name)
	assert.Equal(t, "Butter Chicken", items[1].Name)
	assert.Equal(t, "Dal Makhani", items[2].Name)
	for _, item := range items {
		assert.Len(t, item.Variations, 2)
	}
}

func TestMenuRepository_NotFound(t *testing.T) {
	repo := NewMenuRepository(newTestDB(t))

	_, err := repo.FindMenuItemByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)
}
