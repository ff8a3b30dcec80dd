package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"platter/internal/domain/entity"
	"platter/internal/domain/repository"
	mockRepo "platter/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMenuFile() *menuFile {
	return &menuFile{
		Restaurants: []restaurantDoc{{
			Slug:             "tandoor-house",
			Name:             "Tandoor House",
			DeliveryRadiusKm: 6,
			IsOpen:           true,
			Menu: []menuItemDoc{
				{Name: "Paneer Tikka", Variations: []priceDoc{{Name: "Half", Price: decimal.NewFromInt(180)}}},
				{Name: "Dal Makhani", Variations: []priceDoc{{Name: "Bowl", Price: decimal.NewFromInt(220)}}},
			},
		}},
	}
}

func TestCatalogImporter_CreatesNewRestaurant(t *testing.T) {
	ctx := context.Background()
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	newID := uuid.New()

	restaurantRepo.EXPECT().FindRestaurantBySlug(ctx, "tandoor-house").Return(nil, repository.ErrRestaurantNotFound)
	restaurantRepo.EXPECT().SaveRestaurant(ctx, mock.AnythingOfType("*entity.Restaurant")).
		Run(func(_ context.Context, r *entity.Restaurant) {
			assert.Equal(t, uuid.Nil, r.ID)
			assert.Equal(t, "Tandoor House", r.Name)
			r.ID = newID
		}).Return(nil)
	menuRepo.EXPECT().ListMenuItems(ctx, newID).Return(nil, nil)
	menuRepo.EXPECT().SaveMenuItem(ctx, mock.MatchedBy(func(item *entity.MenuItem) bool {
		return item.RestaurantID == newID && item.ID == uuid.Nil && item.IsAvailable
	})).Return(nil).Times(2)

	importer := newCatalogImporter(restaurantRepo, menuRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	report, err := importer.Import(ctx, testMenuFile())
	require.NoError(t, err)

	assert.Equal(t, importReport{RestaurantsCreated: 1, ItemsCreated: 2}, report)
}

func TestCatalogImporter_UpdatesAndRetires(t *testing.T) {
	ctx := context.Background()
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)

	existing := &entity.Restaurant{ID: uuid.New(), Slug: "tandoor-house", Name: "Old Name"}
	tikka := &entity.MenuItem{ID: uuid.New(), RestaurantID: existing.ID, Name: "paneer tikka", IsAvailable: true}
	retired := &entity.MenuItem{ID: uuid.New(), RestaurantID: existing.ID, Name: "Naan", IsAvailable: true}
	alreadyOff := &entity.MenuItem{ID: uuid.New(), RestaurantID: existing.ID, Name: "Lassi", IsAvailable: false}

	restaurantRepo.EXPECT().FindRestaurantBySlug(ctx, "tandoor-house").Return(existing, nil)
	restaurantRepo.EXPECT().SaveRestaurant(ctx, existing).Return(nil)
	menuRepo.EXPECT().ListMenuItems(ctx, existing.ID).Return([]*entity.MenuItem{tikka, retired, alreadyOff}, nil)

	var saved []*entity.MenuItem
	menuRepo.EXPECT().SaveMenuItem(ctx, mock.AnythingOfType("*entity.MenuItem")).
		Run(func(_ context.Context, item *entity.MenuItem) {
			saved = append(saved, item)
		}).Return(nil)

	importer := newCatalogImporter(restaurantRepo, menuRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	report, err := importer.Import(ctx, testMenuFile())
	require.NoError(t, err)

	assert.Equal(t, importReport{RestaurantsUpdated: 1, ItemsCreated: 1, ItemsUpdated: 1, ItemsRetired: 1}, report)
	assert.Equal(t, "Tandoor House", existing.Name)

	require.Len(t, saved, 3)
	assert.Equal(t, tikka.ID, saved[0].ID)
	assert.Equal(t, "Paneer Tikka", saved[0].Name)
	assert.Equal(t, uuid.Nil, saved[1].ID)
	assert.Equal(t, retired.ID, saved[2].ID)
	assert.False(t, saved[2].IsAvailable)
}

func TestCatalogImporter_StopsOnLookupError(t *testing.T) {
	ctx := context.Background()
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)

	restaurantRepo.EXPECT().FindRestaurantBySlug(ctx, "tandoor-house").Return(nil, assert.AnError)

	importer := newCatalogImporter(restaurantRepo, menuRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := importer.Import(ctx, testMenuFile())
	assert.ErrorIs(t, err, assert.AnError)
}
