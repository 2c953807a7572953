package checkout

import (
	"context"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
)

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order and its items atomically in a transaction.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its items by UUID.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// ListOrdersByCustomer returns all orders placed by a customer, newest first.
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]*Order, error)

	// UpdateStatus advances an order to a new status.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error

	// ProductSnapshot fetches the current price, stock and availability used
	// to revalidate a cart line before it becomes an order line.
	ProductSnapshot(ctx context.Context, productID string) (catalog.ProductSnapshot, error)
}
