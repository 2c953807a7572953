package checkout

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/georgemunganga/printa-storefront/internal/events"
	"github.com/georgemunganga/printa-storefront/internal/metrics"
	"github.com/georgemunganga/printa-storefront/internal/modules/cart"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service defines the checkout business logic.
type Service interface {
	// PlaceOrder turns a cart into a persisted order, publishes the order
	// placed event, and clears the cart on success.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error)

	// GetOrder retrieves a full order with its items by UUID.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// ListCustomerOrders returns a customer's order history.
	ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error)

	// UpdateStatus advances an order to a new lifecycle status.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)

	// CancelOrder cancels a PENDING or CONFIRMED order.
	CancelOrder(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	carts     *cart.Manager
	publisher events.Publisher
	logger    *logrus.Entry
	metrics   *metrics.Metrics
}

// NewService creates a new checkout service.
func NewService(repo Repository, carts *cart.Manager, publisher events.Publisher, logger *logrus.Logger, m *metrics.Metrics) Service {
	return &service{
		repo:      repo,
		carts:     carts,
		publisher: publisher,
		logger:    logger.WithField("component", "checkout"),
		metrics:   m,
	}
}

// validTransitions defines the allowed status state machine.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:      {StatusConfirmed, StatusCancelled},
	StatusConfirmed:    {StatusInProduction, StatusCancelled},
	StatusInProduction: {StatusReady},
	StatusReady:        {StatusDelivered},
	StatusDelivered:    {},
	StatusCancelled:    {},
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	if req.CartID == "" {
		return nil, fmt.Errorf("cart_id is required")
	}

	store := s.carts.Store(ctx, req.CartID)
	snap := store.Snapshot()
	if len(snap.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	// ── Build order lines, revalidate against the catalog ─────────────────
	var items []*OrderItem
	var subtotal float64

	for _, line := range snap.Items {
		// Custom orders carry their quoted price; there is nothing in the
		// catalog to revalidate it against.
		if !line.IsCustomOrder {
			ps, err := s.repo.ProductSnapshot(ctx, line.ProductID)
			if err != nil {
				return nil, fmt.Errorf("product %s is no longer in the catalog", line.ProductID)
			}
			if !ps.Active {
				return nil, fmt.Errorf("product %s is currently unavailable", line.ProductID)
			}
			if math.Abs(ps.BasePrice-line.UnitPrice) > 1e-9 {
				return nil, fmt.Errorf("price for %s has changed since it was added", line.ProductID)
			}
			if ps.Stock < line.Quantity {
				return nil, fmt.Errorf("only %d of product %s left in stock", ps.Stock, line.ProductID)
			}
		}

		lineTotal := line.UnitPrice * float64(line.Quantity)
		subtotal += lineTotal

		items = append(items, &OrderItem{
			ID:            uuid.New(),
			ProductID:     line.ProductID,
			Name:          line.Name,
			Size:          line.Size,
			Color:         line.Color,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			LineTotal:     lineTotal,
			IsCustomOrder: line.IsCustomOrder,
			Customization: line.Customization,
		})
	}

	// ── Calculate totals ──────────────────────────────────────────────────
	taxRate := 0.16 // 16% VAT — Zambia standard rate
	tax := subtotal * taxRate
	total := subtotal + tax

	o := &Order{
		ID:              uuid.New(),
		OrderNumber:     generateOrderNumber(),
		Status:          StatusPending,
		Subtotal:        round2(subtotal),
		Tax:             round2(tax),
		Total:           round2(total),
		Currency:        "ZMW",
		Notes:           req.Notes,
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
	}

	if req.CustomerID != "" {
		uid, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("invalid customer_id: %w", err)
		}
		o.CustomerID = &uid
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	// The order is committed; event publishing and cart teardown are
	// best-effort from here.
	event := events.OrderPlaced{
		OrderID:     o.ID.String(),
		OrderNumber: o.OrderNumber,
		CustomerID:  req.CustomerID,
		Total:       o.Total,
		Currency:    o.Currency,
		ItemCount:   snap.TotalItems,
		PlacedAt:    time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.WithError(err).WithField("order_id", o.ID).Error("order placed event not published")
	}

	store.Clear(ctx)
	s.metrics.OrderPlaced(o.Total)
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.repo.GetOrderByNumber(ctx, orderNumber)
}

func (s *service) ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error) {
	return s.repo.ListOrdersByCustomer(ctx, customerID)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	newStatus := OrderStatus(strings.ToUpper(req.Status))
	valid := false
	for _, allowed := range validTransitions[o.Status] {
		if allowed == newStatus {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	o.Status = newStatus
	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, id string) error {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return fmt.Errorf("order not found: %w", err)
	}
	if o.Status != StatusPending && o.Status != StatusConfirmed {
		return fmt.Errorf("only PENDING or CONFIRMED orders can be cancelled (current: %s)", o.Status)
	}
	return s.repo.UpdateStatus(ctx, id, StatusCancelled)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// generateOrderNumber creates a human-readable order number: ORD-YYYYMMDD-XXXX
func generateOrderNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
