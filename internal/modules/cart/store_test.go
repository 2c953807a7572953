package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestStore(t *testing.T) (*Store, *recordingRepository) {
	t.Helper()
	repo := &recordingRepository{inner: NewMemoryRepository()}
	return NewStore(context.Background(), gofakeit.UUID(), repo, testLogger(), nil), repo
}

func plainItem(productID, size, color string, qty int, price float64) LineItem {
	return LineItem{
		ProductID: productID,
		Name:      gofakeit.ProductName(),
		Image:     gofakeit.URL(),
		UnitPrice: price,
		Quantity:  qty,
		StockHint: 50,
		Size:      size,
		Color:     color,
	}
}

func customItem(productID string, qty int, price float64, payload string) LineItem {
	return LineItem{
		ProductID:     productID,
		Name:          gofakeit.ProductName(),
		UnitPrice:     price,
		Quantity:      qty,
		IsCustomOrder: true,
		Customization: json.RawMessage(payload),
	}
}

// recordingRepository counts repository calls so tests can observe the
// store's persistence behavior.
type recordingRepository struct {
	inner   Repository
	saves   int
	deletes int
}

func (r *recordingRepository) Load(ctx context.Context, cartID string) ([]LineItem, error) {
	return r.inner.Load(ctx, cartID)
}

func (r *recordingRepository) Save(ctx context.Context, cartID string, items []LineItem) error {
	r.saves++
	return r.inner.Save(ctx, cartID, items)
}

func (r *recordingRepository) Delete(ctx context.Context, cartID string) error {
	r.deletes++
	return r.inner.Delete(ctx, cartID)
}

func TestAddItemMergesByIdentityTuple(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "Black", 1, 100)))
	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "Black", 1, 100)))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, Totals{TotalItems: 2, TotalPrice: 200}, store.Totals())
}

func TestAddItemDistinctVariantsOpenNewSlots(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "Black", 1, 100)))
	require.NoError(t, store.AddItem(ctx, plainItem("P1", "L", "Black", 1, 100)))
	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "White", 1, 100)))
	require.NoError(t, store.AddItem(ctx, plainItem("P2", "M", "Black", 1, 80)))

	assert.Len(t, store.Items(), 4)
	assert.Equal(t, Totals{TotalItems: 4, TotalPrice: 380}, store.Totals())
}

func TestAddItemCustomOrdersNeverMerge(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(ctx, customItem("P1", 1, 250, `{"design":"upload-1"}`)))
	require.NoError(t, store.AddItem(ctx, customItem("P1", 1, 250, `{"design":"upload-2"}`)))

	items := store.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.JSONEq(t, `{"design":"upload-1"}`, string(items[0].Customization))
	assert.JSONEq(t, `{"design":"upload-2"}`, string(items[1].Customization))
	assert.Equal(t, Totals{TotalItems: 2, TotalPrice: 500}, store.Totals())
}

func TestAddItemCustomDoesNotMergeWithPlainSameTuple(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	plain := plainItem("P1", "M", "Black", 1, 100)
	custom := customItem("P1", 1, 250, `{}`)
	custom.Size = "M"
	custom.Color = "Black"

	require.NoError(t, store.AddItem(ctx, plain))
	require.NoError(t, store.AddItem(ctx, custom))
	require.NoError(t, store.AddItem(ctx, plain))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[1].IsCustomOrder)
}

func TestAddItemRejectsQuantityBelowOne(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	err := store.AddItem(ctx, plainItem("P1", "", "", 0, 100))
	require.ErrorIs(t, err, ErrQuantityTooLow)
	assert.Empty(t, store.Items())
}

func TestTotalsConsistencyAcrossOperations(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "Black", 3, 19.99)))
	require.NoError(t, store.AddItem(ctx, plainItem("P2", "", "", 2, 7.5)))
	require.NoError(t, store.AddItem(ctx, customItem("P3", 1, 120.25, `{}`)))
	require.NoError(t, store.UpdateQuantity(ctx, ItemKey{ProductID: "P2"}, 5))

	var wantItems int
	var wantPrice float64
	for _, it := range store.Items() {
		wantItems += it.Quantity
		wantPrice += it.UnitPrice * float64(it.Quantity)
	}

	totals := store.Totals()
	assert.Equal(t, wantItems, totals.TotalItems)
	assert.InDelta(t, wantPrice, totals.TotalPrice, 1e-9)
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "Black", 1, 100)))
	require.NoError(t, store.UpdateQuantity(ctx, ItemKey{ProductID: "P1", Size: "M", Color: "Black"}, 5))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, Totals{TotalItems: 5, TotalPrice: 500}, store.Totals())
}

func TestUpdateQuantityUnknownKeyIsNoOp(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "Black", 2, 100)))
	savesBefore := repo.saves

	require.NoError(t, store.UpdateQuantity(ctx, ItemKey{ProductID: "P9"}, 3))
	assert.Equal(t, savesBefore, repo.saves)
	assert.Equal(t, Totals{TotalItems: 2, TotalPrice: 200}, store.Totals())
}

func TestUpdateQuantityRejectsQuantityBelowOne(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "Black", 2, 100)))
	err := store.UpdateQuantity(ctx, ItemKey{ProductID: "P1", Size: "M", Color: "Black"}, 0)
	require.ErrorIs(t, err, ErrQuantityTooLow)
	assert.Equal(t, 2, store.Items()[0].Quantity)
}

func TestRemoveItemByID(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "Black", 1, 100)))
	require.NoError(t, store.AddItem(ctx, plainItem("P2", "", "", 1, 50)))

	items := store.Items()
	store.RemoveItem(ctx, items[0].ID)

	remaining := store.Items()
	require.Len(t, remaining, 1)
	assert.Equal(t, "P2", remaining[0].ProductID)
	assert.Equal(t, Totals{TotalItems: 1, TotalPrice: 50}, store.Totals())
}

func TestRemoveItemUnknownIDIsIdempotentNoOp(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	store.RemoveItem(ctx, uuid.New())
	assert.Empty(t, store.Items())
	assert.Zero(t, repo.saves)

	require.NoError(t, store.AddItem(ctx, plainItem("P1", "", "", 1, 10)))
	savesBefore := repo.saves
	store.RemoveItem(ctx, uuid.New())
	assert.Equal(t, savesBefore, repo.saves)
	assert.Len(t, store.Items(), 1)
}

func TestClearResetsFullyAndDeletesSnapshot(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "Black", 3, 100)))
	require.NoError(t, store.AddItem(ctx, customItem("P2", 1, 200, `{}`)))

	store.Clear(ctx)

	assert.Empty(t, store.Items())
	assert.Equal(t, Totals{}, store.Totals())
	assert.Equal(t, 1, repo.deletes)
}

func TestHydrationRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	cartID := gofakeit.UUID()

	first := NewStore(ctx, cartID, repo, testLogger(), nil)
	require.NoError(t, first.AddItem(ctx, plainItem("P1", "M", "Black", 2, 19.99)))
	require.NoError(t, first.AddItem(ctx, customItem("P2", 1, 150, `{"location":"front","print_size":"large"}`)))

	second := NewStore(ctx, cartID, repo, testLogger(), nil)
	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, first.Totals(), second.Totals())
}

func TestHydrationCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := &corruptRepository{}

	store := NewStore(ctx, "cart-1", repo, testLogger(), nil)
	assert.Empty(t, store.Items())
	assert.Equal(t, Totals{}, store.Totals())

	// The store still accepts mutations after a failed hydration.
	require.NoError(t, store.AddItem(ctx, plainItem("P1", "", "", 1, 10)))
	assert.Len(t, store.Items(), 1)
}

func TestWriteFailureKeepsInMemoryStateAuthoritative(t *testing.T) {
	ctx := context.Background()
	repo := &corruptRepository{}

	store := NewStore(ctx, "cart-1", repo, testLogger(), nil)
	require.NoError(t, store.AddItem(ctx, plainItem("P1", "M", "Black", 2, 100)))

	assert.Len(t, store.Items(), 1)
	assert.Equal(t, Totals{TotalItems: 2, TotalPrice: 200}, store.Totals())
}

// corruptRepository fails every call, standing in for unreadable or
// unwritable storage.
type corruptRepository struct{}

func (corruptRepository) Load(context.Context, string) ([]LineItem, error) {
	return nil, errors.New("payload is not valid json")
}

func (corruptRepository) Save(context.Context, string, []LineItem) error {
	return errors.New("storage unavailable")
}

func (corruptRepository) Delete(context.Context, string) error {
	return errors.New("storage unavailable")
}
