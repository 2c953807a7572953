package cart

import "context"

// Repository persists cart snapshots. Each cart owns one named slot holding
// the serialized ordered item list; derived totals are never stored. The
// slot is written by the cart store exclusively.
type Repository interface {
	// Load returns the persisted items for a cart. A cart with no snapshot
	// yields an empty list, not an error.
	Load(ctx context.Context, cartID string) ([]LineItem, error)

	// Save overwrites the cart's snapshot with the given items.
	Save(ctx context.Context, cartID string, items []LineItem) error

	// Delete removes the cart's snapshot entirely, so a fresh session starts
	// with no artifact.
	Delete(ctx context.Context, cartID string) error
}
