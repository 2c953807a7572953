package review

import "context"

// Repository defines data access for reviews.
type Repository interface {
	// Create persists a new review.
	Create(ctx context.Context, rv *Review) error

	// GetByID retrieves a review by UUID.
	GetByID(ctx context.Context, id string) (*Review, error)

	// ListByProduct returns a product's reviews with the given status,
	// newest first.
	ListByProduct(ctx context.Context, productID string, status ReviewStatus) ([]*Review, error)

	// ListByStatus returns reviews across all products for the admin queue.
	ListByStatus(ctx context.Context, status ReviewStatus) ([]*Review, error)

	// UpdateStatus moves a review to a new moderation state.
	UpdateStatus(ctx context.Context, id string, status ReviewStatus) error
}
