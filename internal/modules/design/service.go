package design

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines the design and customization-quote business logic.
type Service interface {
	// CreateDesign adds a pre-made template to the gallery.
	CreateDesign(ctx context.Context, req CreateDesignRequest) (*Design, error)

	// ListDesigns returns the template gallery.
	ListDesigns(ctx context.Context, activeOnly bool) ([]*Design, error)

	// QuoteCustomization prices a customization for a product, optionally
	// including a pre-made template's fee.
	QuoteCustomization(ctx context.Context, req QuoteRequest) (Quote, error)
}

// CreateDesignRequest holds the data for adding a template.
type CreateDesignRequest struct {
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
}

// QuoteRequest identifies the product, the chosen options and, when the
// shopper picked one, the pre-made template.
type QuoteRequest struct {
	ProductID string `json:"product_id"`
	DesignID  string `json:"design_id,omitempty"`
	Location  string `json:"location"`
	PrintSize string `json:"print_size"`
}

type service struct{ repo Repository }

// NewService creates a new design service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateDesign(ctx context.Context, req CreateDesignRequest) (*Design, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	d := &Design{
		ID:       uuid.New(),
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Price:    req.Price,
		IsActive: true,
	}
	if err := s.repo.CreateDesign(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) ListDesigns(ctx context.Context, activeOnly bool) ([]*Design, error) {
	return s.repo.ListDesigns(ctx, activeOnly)
}

func (s *service) QuoteCustomization(ctx context.Context, req QuoteRequest) (Quote, error) {
	if req.ProductID == "" {
		return Quote{}, fmt.Errorf("product_id is required")
	}

	pricing, err := s.repo.ProductPricing(ctx, req.ProductID)
	if err != nil {
		return Quote{}, fmt.Errorf("product %s not found", req.ProductID)
	}
	if !pricing.Customizable {
		return Quote{}, fmt.Errorf("product %s does not accept customization", req.ProductID)
	}

	var designPrice float64
	if req.DesignID != "" {
		d, err := s.repo.GetDesign(ctx, req.DesignID)
		if err != nil {
			return Quote{}, fmt.Errorf("design %s not found", req.DesignID)
		}
		if !d.IsActive {
			return Quote{}, fmt.Errorf("design %s is no longer available", req.DesignID)
		}
		designPrice = d.Price
	}

	return QuoteCustomization(QuoteInput{
		BasePrice:         pricing.BasePrice,
		DesignPrice:       designPrice,
		Location:          PrintLocation(strings.ToLower(req.Location)),
		PrintSize:         PrintSize(strings.ToLower(req.PrintSize)),
		LocationOverrides: pricing.LocationSurcharges,
		SizeOverrides:     pricing.SizeSurcharges,
	})
}
