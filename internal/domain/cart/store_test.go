// internal/domain/cart/store_test.go
package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront/internal/domain/cart"
)

func newTestStore(t *testing.T) (*cart.Store, *cart.MemoryPersistence) {
	t.Helper()
	persistence := cart.NewMemoryPersistence()
	return cart.NewStore(persistence, nil), persistence
}

func chair() cart.NewItem {
	return cart.NewItem{ID: "p-101", Name: "Walnut Chair", Price: 18900, Image: "/images/chair.jpg"}
}

func lamp() cart.NewItem {
	return cart.NewItem{ID: "p-202", Name: "Brass Lamp", Price: 7400, Image: "/images/lamp.jpg"}
}

func TestAddItemDistinctIDs(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "sess-1", chair())
	require.NoError(t, err)
	state, err := store.AddItem(ctx, "sess-1", lamp())
	require.NoError(t, err)

	require.Len(t, state.Items, 2)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assert.Equal(t, 1, state.Items[1].Quantity)
	// Insertion order preserved for display
	assert.Equal(t, "p-101", state.Items[0].ID)
	assert.Equal(t, "p-202", state.Items[1].ID)
}

func TestAddItemSameIDIncrements(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var state cart.State
	var err error
	for i := 0; i < 3; i++ {
		state, err = store.AddItem(ctx, "sess-1", chair())
		require.NoError(t, err)
	}

	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
}

func TestRemoveItemIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "sess-1", chair())
	require.NoError(t, err)

	state, err := store.RemoveItem(ctx, "sess-1", "p-101")
	require.NoError(t, err)
	assert.Empty(t, state.Items)

	// Second removal of the same id is a no-op, not an error
	state, err = store.RemoveItem(ctx, "sess-1", "p-101")
	require.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestUpdateQuantity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "sess-1", chair())
	require.NoError(t, err)

	state, err := store.UpdateQuantity(ctx, "sess-1", "p-101", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, state.Items[0].Quantity)

	_, err = store.UpdateQuantity(ctx, "sess-1", "missing", 2)
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	store, persistence := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "sess-1", chair())
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "sess-1"))
	assert.Empty(t, store.Snapshot("sess-1").Items)

	loaded, err := persistence.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestPersistenceRoundTrip(t *testing.T) {
	persistence := cart.NewMemoryPersistence()
	ctx := context.Background()

	store := cart.NewStore(persistence, nil)
	_, err := store.AddItem(ctx, "sess-1", chair())
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "sess-1", lamp())
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "sess-1", chair())
	require.NoError(t, err)
	before := store.Snapshot("sess-1")

	// A fresh store over the same persistence simulates a reload
	reloaded := cart.NewStore(persistence, nil)
	require.NoError(t, reloaded.Hydrate(ctx, "sess-1"))
	after := reloaded.Snapshot("sess-1")

	assert.Equal(t, before.Items, after.Items)
}

func TestSnapshotBeforeHydrationIsEmpty(t *testing.T) {
	persistence := cart.NewMemoryPersistence()
	ctx := context.Background()

	seed := cart.NewStore(persistence, nil)
	_, err := seed.AddItem(ctx, "sess-1", chair())
	require.NoError(t, err)

	store := cart.NewStore(persistence, nil)
	assert.False(t, store.Hydrated("sess-1"))
	assert.Empty(t, store.Snapshot("sess-1").Items)

	require.NoError(t, store.Hydrate(ctx, "sess-1"))
	assert.True(t, store.Hydrated("sess-1"))
	assert.Len(t, store.Snapshot("sess-1").Items, 1)
}

func TestMutationHydratesFirst(t *testing.T) {
	persistence := cart.NewMemoryPersistence()
	ctx := context.Background()

	seed := cart.NewStore(persistence, nil)
	_, err := seed.AddItem(ctx, "sess-1", chair())
	require.NoError(t, err)

	// Adding through an unhydrated store must not clobber the
	// persisted cart
	store := cart.NewStore(persistence, nil)
	state, err := store.AddItem(ctx, "sess-1", lamp())
	require.NoError(t, err)
	require.Len(t, state.Items, 2)
}

func TestTotals(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "sess-1", chair())
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "sess-1", chair())
	require.NoError(t, err)
	state, err := store.AddItem(ctx, "sess-1", lamp())
	require.NoError(t, err)

	totals := state.Totals(0.10)
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.Equal(t, int64(2*18900+7400), totals.Subtotal)
	assert.Equal(t, int64(float64(totals.Subtotal)*0.10), totals.Tax)
	assert.Equal(t, totals.Subtotal+totals.Tax, totals.Total)
}

func TestFilePersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	persistence, err := cart.NewFilePersistence(dir, "storefront:cart")
	require.NoError(t, err)
	ctx := context.Background()

	store := cart.NewStore(persistence, nil)
	_, err = store.AddItem(ctx, "sess-9", chair())
	require.NoError(t, err)

	reloaded := cart.NewStore(persistence, nil)
	require.NoError(t, reloaded.Hydrate(ctx, "sess-9"))
	state := reloaded.Snapshot("sess-9")
	require.Len(t, state.Items, 1)
	assert.Equal(t, "Walnut Chair", state.Items[0].Name)

	require.NoError(t, persistence.Delete(ctx, "sess-9"))
	loaded, err := persistence.Load(ctx, "sess-9")
	require.NoError(t, err)
	assert.Nil(t, loaded)
	// Deleting again is fine
	require.NoError(t, persistence.Delete(ctx, "sess-9"))
}
