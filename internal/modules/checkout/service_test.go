package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/georgemunganga/printa-storefront/internal/events"
	"github.com/georgemunganga/printa-storefront/internal/modules/cart"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	orders    map[string]*Order
	snapshots map[string]catalog.ProductSnapshot
	createErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		orders:    make(map[string]*Order),
		snapshots: make(map[string]catalog.ProductSnapshot),
	}
}

func (f *fakeRepository) CreateOrder(_ context.Context, o *Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders[o.ID.String()] = o
	return nil
}

func (f *fakeRepository) GetOrderByID(_ context.Context, id string) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return o, nil
}

func (f *fakeRepository) GetOrderByNumber(_ context.Context, number string) (*Order, error) {
	for _, o := range f.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, errors.New("no rows in result set")
}

func (f *fakeRepository) ListOrdersByCustomer(_ context.Context, customerID string) ([]*Order, error) {
	var out []*Order
	for _, o := range f.orders {
		if o.CustomerID != nil && o.CustomerID.String() == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id string, status OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return errors.New("no rows in result set")
	}
	o.Status = status
	return nil
}

func (f *fakeRepository) ProductSnapshot(_ context.Context, productID string) (catalog.ProductSnapshot, error) {
	snap, ok := f.snapshots[productID]
	if !ok {
		return catalog.ProductSnapshot{}, errors.New("no rows in result set")
	}
	return snap, nil
}

type capturingPublisher struct {
	published []events.OrderPlaced
	err       error
}

func (p *capturingPublisher) PublishOrderPlaced(_ context.Context, e events.OrderPlaced) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, e)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

type fixture struct {
	service   Service
	repo      *fakeRepository
	carts     *cart.Manager
	publisher *capturingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := newFakeRepository()
	publisher := &capturingPublisher{}
	carts := cart.NewManager(cart.NewMemoryRepository(), logger, nil)
	return &fixture{
		service:   NewService(repo, carts, publisher, logger, nil),
		repo:      repo,
		carts:     carts,
		publisher: publisher,
	}
}

func (f *fixture) seedCart(t *testing.T, cartID string, items ...cart.LineItem) *cart.Store {
	t.Helper()
	store := f.carts.Store(context.Background(), cartID)
	for _, it := range items {
		require.NoError(t, store.AddItem(context.Background(), it))
	}
	return store
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.repo.snapshots["P1"] = catalog.ProductSnapshot{BasePrice: 100, Stock: 10, Active: true}
	store := f.seedCart(t, "cart-1",
		cart.LineItem{ProductID: "P1", Name: "Classic Tee", UnitPrice: 100, Quantity: 2, Size: "M", Color: "Black"},
		cart.LineItem{ProductID: "P2", Name: "Custom Hoodie", UnitPrice: 230, Quantity: 1,
			IsCustomOrder: true, Customization: json.RawMessage(`{"location":"back"}`)},
	)

	customerID := uuid.New()
	o, err := f.service.PlaceOrder(ctx, PlaceOrderRequest{
		CartID:     "cart-1",
		CustomerID: customerID.String(),
		Notes:      "leave at reception",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 430.0, o.Subtotal)
	assert.InDelta(t, 68.8, o.Tax, 0.01)
	assert.InDelta(t, 498.8, o.Total, 0.01)
	assert.Equal(t, "ZMW", o.Currency)
	require.NotNil(t, o.CustomerID)
	assert.Equal(t, customerID, *o.CustomerID)
	require.Len(t, o.Items, 2)
	assert.Equal(t, 200.0, o.Items[0].LineTotal)
	assert.True(t, o.Items[1].IsCustomOrder)

	// The cart is torn down after a successful order.
	assert.Empty(t, store.Items())
	assert.Equal(t, cart.Totals{}, store.Totals())

	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, o.ID.String(), f.publisher.published[0].OrderID)
	assert.Equal(t, 3, f.publisher.published[0].ItemCount)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.PlaceOrder(context.Background(), PlaceOrderRequest{CartID: "cart-1"})
	require.EqualError(t, err, "cart is empty")
}

func TestPlaceOrderRejectsPriceDrift(t *testing.T) {
	f := newFixture(t)

	f.repo.snapshots["P1"] = catalog.ProductSnapshot{BasePrice: 120, Stock: 10, Active: true}
	store := f.seedCart(t, "cart-1",
		cart.LineItem{ProductID: "P1", Name: "Classic Tee", UnitPrice: 100, Quantity: 1})

	_, err := f.service.PlaceOrder(context.Background(), PlaceOrderRequest{CartID: "cart-1"})
	require.ErrorContains(t, err, "has changed")

	// A failed checkout leaves the cart intact.
	assert.Len(t, store.Items(), 1)
	assert.Empty(t, f.publisher.published)
}

func TestPlaceOrderRejectsUnavailableProduct(t *testing.T) {
	f := newFixture(t)

	f.repo.snapshots["P1"] = catalog.ProductSnapshot{BasePrice: 100, Stock: 10, Active: false}
	f.seedCart(t, "cart-1",
		cart.LineItem{ProductID: "P1", Name: "Classic Tee", UnitPrice: 100, Quantity: 1})

	_, err := f.service.PlaceOrder(context.Background(), PlaceOrderRequest{CartID: "cart-1"})
	require.ErrorContains(t, err, "unavailable")
}

func TestPlaceOrderRejectsInsufficientStock(t *testing.T) {
	f := newFixture(t)

	f.repo.snapshots["P1"] = catalog.ProductSnapshot{BasePrice: 100, Stock: 2, Active: true}
	f.seedCart(t, "cart-1",
		cart.LineItem{ProductID: "P1", Name: "Classic Tee", UnitPrice: 100, Quantity: 3})

	_, err := f.service.PlaceOrder(context.Background(), PlaceOrderRequest{CartID: "cart-1"})
	require.ErrorContains(t, err, "left in stock")
}

func TestPlaceOrderCustomLineSkipsCatalogRevalidation(t *testing.T) {
	f := newFixture(t)

	// No catalog snapshot seeded: a custom line must still check out.
	f.seedCart(t, "cart-1",
		cart.LineItem{ProductID: "P9", Name: "Custom Tee", UnitPrice: 180, Quantity: 1,
			IsCustomOrder: true, Customization: json.RawMessage(`{"notes":"team logo"}`)})

	o, err := f.service.PlaceOrder(context.Background(), PlaceOrderRequest{CartID: "cart-1"})
	require.NoError(t, err)
	assert.Equal(t, 180.0, o.Subtotal)
}

func TestPlaceOrderSurvivesPublishFailure(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("broker down")

	f.repo.snapshots["P1"] = catalog.ProductSnapshot{BasePrice: 50, Stock: 5, Active: true}
	store := f.seedCart(t, "cart-1",
		cart.LineItem{ProductID: "P1", Name: "Classic Tee", UnitPrice: 50, Quantity: 1})

	o, err := f.service.PlaceOrder(context.Background(), PlaceOrderRequest{CartID: "cart-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, o.OrderNumber)
	assert.Empty(t, store.Items())
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.repo.snapshots["P1"] = catalog.ProductSnapshot{BasePrice: 50, Stock: 5, Active: true}
	f.seedCart(t, "cart-1",
		cart.LineItem{ProductID: "P1", Name: "Classic Tee", UnitPrice: 50, Quantity: 1})
	o, err := f.service.PlaceOrder(ctx, PlaceOrderRequest{CartID: "cart-1"})
	require.NoError(t, err)

	for _, status := range []string{"confirmed", "in_production", "ready", "delivered"} {
		o, err = f.service.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: status})
		require.NoError(t, err)
	}
	assert.Equal(t, StatusDelivered, o.Status)

	_, err = f.service.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: "pending"})
	require.ErrorContains(t, err, "cannot transition")
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.repo.snapshots["P1"] = catalog.ProductSnapshot{BasePrice: 50, Stock: 5, Active: true}
	f.seedCart(t, "cart-1",
		cart.LineItem{ProductID: "P1", Name: "Classic Tee", UnitPrice: 50, Quantity: 1})
	o, err := f.service.PlaceOrder(ctx, PlaceOrderRequest{CartID: "cart-1"})
	require.NoError(t, err)

	require.NoError(t, f.service.CancelOrder(ctx, o.ID.String()))

	got, err := f.service.GetOrder(ctx, o.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)

	// Cancelled orders cannot be cancelled again.
	require.ErrorContains(t, f.service.CancelOrder(ctx, o.ID.String()), "only PENDING")
}
