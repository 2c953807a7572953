package catalog

import "context"

// Repository defines data access for catalog products.
type Repository interface {
	// Create persists a new product.
	Create(ctx context.Context, p *Product) error

	// GetByID retrieves a product by UUID.
	GetByID(ctx context.Context, id string) (*Product, error)

	// List returns products, optionally filtered by category and restricted
	// to active ones.
	List(ctx context.Context, category string, activeOnly bool) ([]*Product, error)

	// Update overwrites an existing product.
	Update(ctx context.Context, p *Product) error

	// Snapshot fetches the current price, stock and availability for a product.
	Snapshot(ctx context.Context, id string) (ProductSnapshot, error)
}
