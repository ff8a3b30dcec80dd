package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"platter/internal/domain/cart"
	"platter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id string) entity.LineItem {
	return entity.LineItem{
		LineID:       id,
		ProductID:    "p-" + id,
		RestaurantID: "r1",
		Name:         "Item " + id,
		UnitPrice:    decimal.NewFromInt(100),
		Quantity:     1,
	}
}

func TestRegistry_StoresAreIsolatedPerSession(t *testing.T) {
	r := NewRegistry(10, time.Hour, nil)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, r.GetOrCreate(ctx, a).AddLine(line("x")))

	assert.Equal(t, 1, r.GetOrCreate(ctx, a).Len())
	assert.Equal(t, 0, r.GetOrCreate(ctx, b).Len())
	assert.Same(t, r.GetOrCreate(ctx, a), r.GetOrCreate(ctx, a))
	assert.NotSame(t, r.GetOrCreate(ctx, a), r.GetOrCreate(ctx, b))
}

func TestRegistry_FindAndDelete(t *testing.T) {
	r := NewRegistry(10, time.Hour, nil)
	ctx := context.Background()
	id := uuid.New()

	_, ok := r.Find(ctx, id)
	assert.False(t, ok)

	r.GetOrCreate(ctx, id)
	_, ok = r.Find(ctx, id)
	assert.True(t, ok)

	r.Delete(ctx, id)
	_, ok = r.Find(ctx, id)
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

func TestRegistry_MaxLinesApplied(t *testing.T) {
	r := NewRegistry(1, time.Hour, nil)
	store := r.GetOrCreate(context.Background(), uuid.New())

	require.NoError(t, store.AddLine(line("a")))
	assert.ErrorIs(t, store.AddLine(line("b")), cart.ErrCartFull)
}

func TestRegistry_SweepDropsIdleCarts(t *testing.T) {
	r := NewRegistry(10, time.Hour, nil)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }
	ctx := context.Background()

	stale, fresh := uuid.New(), uuid.New()
	r.GetOrCreate(ctx, stale)

	clock = clock.Add(50 * time.Minute)
	r.GetOrCreate(ctx, fresh)

	clock = clock.Add(20 * time.Minute)
	assert.Equal(t, 1, r.Sweep())

	_, ok := r.Find(ctx, stale)
	assert.False(t, ok)
	_, ok = r.Find(ctx, fresh)
	assert.True(t, ok)
}

func TestRegistry_ZeroIdleNeverSweeps(t *testing.T) {
	r := NewRegistry(10, 0, nil)
	r.GetOrCreate(context.Background(), uuid.New())

	assert.Zero(t, r.Sweep())
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ConcurrentSessions(t *testing.T) {
	r := NewRegistry(10, time.Hour, nil)
	ctx := context.Background()
	ids := make([]uuid.UUID, 20)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			for range 50 {
				_ = r.GetOrCreate(ctx, id).AddLine(line("same"))
			}
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		snap := r.GetOrCreate(ctx, id).Snapshot()
		require.Len(t, snap, 1)
		assert.Equal(t, 50, snap[0].Quantity)
	}
}
