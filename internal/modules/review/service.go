package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines review business logic.
type Service interface {
	// SubmitReview records a new review in the moderation queue.
	SubmitReview(ctx context.Context, req SubmitReviewRequest) (*Review, error)

	// ListProductReviews returns a product's approved reviews.
	ListProductReviews(ctx context.Context, productID string) ([]*Review, error)

	// ListModerationQueue returns reviews awaiting or past moderation.
	ListModerationQueue(ctx context.Context, status string) ([]*Review, error)

	// Moderate approves or rejects a pending review.
	Moderate(ctx context.Context, id string, approve bool) (*Review, error)
}

// SubmitReviewRequest holds the data for a new review.
type SubmitReviewRequest struct {
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id"`
	Rating     int    `json:"rating"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}

type service struct{ repo Repository }

// NewService creates a new review service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) SubmitReview(ctx context.Context, req SubmitReviewRequest) (*Review, error) {
	if req.ProductID == "" {
		return nil, fmt.Errorf("product_id is required")
	}
	if req.CustomerID == "" {
		return nil, fmt.Errorf("customer_id is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	rv := &Review{
		ID:         uuid.New(),
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		Title:      req.Title,
		Body:       req.Body,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) ListProductReviews(ctx context.Context, productID string) ([]*Review, error) {
	return s.repo.ListByProduct(ctx, productID, StatusApproved)
}

func (s *service) ListModerationQueue(ctx context.Context, status string) ([]*Review, error) {
	st := ReviewStatus(strings.ToUpper(status))
	if st == "" {
		st = StatusPending
	}
	switch st {
	case StatusPending, StatusApproved, StatusRejected:
	default:
		return nil, fmt.Errorf("unknown review status %q", status)
	}
	return s.repo.ListByStatus(ctx, st)
}

func (s *service) Moderate(ctx context.Context, id string, approve bool) (*Review, error) {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review not found: %w", err)
	}
	if rv.Status != StatusPending {
		return nil, fmt.Errorf("review has already been moderated (current: %s)", rv.Status)
	}

	next := StatusRejected
	if approve {
		next = StatusApproved
	}
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	rv.Status = next
	return rv, nil
}
