package wishlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines wishlist business logic.
type Service interface {
	AddEntry(ctx context.Context, req AddEntryRequest) (*Entry, error)
	RemoveEntry(ctx context.Context, customerID, productID string) error
	ListEntries(ctx context.Context, customerID string) ([]*Entry, error)
}

// AddEntryRequest holds the product snapshot to save.
type AddEntryRequest struct {
	CustomerID string  `json:"customer_id"`
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	UnitPrice  float64 `json:"unit_price"`
}

type service struct{ repo Repository }

// NewService creates a new wishlist service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) AddEntry(ctx context.Context, req AddEntryRequest) (*Entry, error) {
	if req.CustomerID == "" {
		return nil, fmt.Errorf("customer_id is required")
	}
	if req.ProductID == "" {
		return nil, fmt.Errorf("product_id is required")
	}
	e := &Entry{
		ID:         uuid.New(),
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Name:       req.Name,
		Image:      req.Image,
		UnitPrice:  req.UnitPrice,
	}
	if err := s.repo.Add(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) RemoveEntry(ctx context.Context, customerID, productID string) error {
	return s.repo.Remove(ctx, customerID, productID)
}

func (s *service) ListEntries(ctx context.Context, customerID string) ([]*Entry, error) {
	return s.repo.List(ctx, customerID)
}
