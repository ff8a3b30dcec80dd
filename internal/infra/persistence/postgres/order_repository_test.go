package postgres

import (
	"context"
	"errors"
	"testing"

	"platter/internal/domain/entity"
	"platter/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(restaurantID uuid.UUID) *entity.Order {
	return &entity.Order{
		SessionID:     uuid.New(),
		RestaurantID:  restaurantID,
		Status:        entity.OrderStatusPlaced,
		DeliveryMode:  entity.DeliveryModePickup,
		CustomerName:  "Asha",
		CustomerPhone: "+919800000000",
		Subtotal:      decimal.NewFromInt(940),
		DeliveryFee:   decimal.Zero,
		Tax:           decimal.NewFromInt(47),
		Total:         decimal.NewFromInt(987),
		Lines: []entity.OrderLine{
			{
				LineID:        "a1",
				MenuItemID:    uuid.NewString(),
				Name:          "Butter Chicken",
				VariationName: "Full",
				AddOnNames:    []string{"Extra gravy"},
				UnitPrice:     decimal.NewFromInt(420),
				Quantity:      2,
				LineTotal:     decimal.NewFromInt(840),
			},
			{
				LineID:     "b2",
				MenuItemID: uuid.NewString(),
				Name:       "Naan",
				UnitPrice:  decimal.NewFromInt(100),
				Quantity:   1,
				LineTotal:  decimal.NewFromInt(100),
			},
		},
	}
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	order := newOrder(uuid.New())
	require.NoError(t, repo.CreateOrder(ctx, order))
	require.NotEqual(t, uuid.Nil, order.ID)
	require.NotEqual(t, uuid.Nil, order.Lines[0].ID)

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPlaced, found.Status)
	assert.Equal(t, entity.DeliveryModePickup, found.DeliveryMode)
	assert.True(t, found.Total.Equal(decimal.NewFromInt(987)))
	require.Len(t, found.Lines, 2)
	assert.Equal(t, "a1", found.Lines[0].LineID)
	assert.Equal(t, []string{"Extra gravy"}, found.Lines[0].AddOnNames)
	assert.Equal(t, 2, found.Lines[0].Quantity)
	assert.Equal(t, "b2", found.Lines[1].LineID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	order := newOrder(uuid.New())
	require.NoError(t, repo.CreateOrder(ctx, order))

	require.NoError(t, repo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusSentToKitchen))

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusSentToKitchen, found.Status)

	err = repo.UpdateOrderStatus(ctx, uuid.New(), entity.OrderStatusSentToKitchen)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_NotFound(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	_, err := repo.FindOrderByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	order := newOrder(uuid.New())
	errAbort := errors.New("abort")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return err
		}

		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	_, err = NewOrderRepository(db).FindOrderByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	order := newOrder(uuid.New())

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewOrderRepository().CreateOrder(ctx, order)
	})
	require.NoError(t, err)

	found, err := NewOrderRepository(db).FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}
