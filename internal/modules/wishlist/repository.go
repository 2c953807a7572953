package wishlist

import "context"

// Repository defines data access for wishlists.
type Repository interface {
	// Add saves an entry. Adding a product already on the customer's list is
	// a no-op.
	Add(ctx context.Context, e *Entry) error

	// Remove deletes a product from the customer's list; removing a product
	// that is not on it is a no-op.
	Remove(ctx context.Context, customerID, productID string) error

	// List returns the customer's entries in the order they were added.
	List(ctx context.Context, customerID string) ([]*Entry, error)
}
