package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, category string, activeOnly bool) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error)
}

// CreateProductRequest holds the data for creating or updating a product.
type CreateProductRequest struct {
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Category           string             `json:"category"`
	BasePrice          float64            `json:"base_price"`
	Currency           string             `json:"currency"`
	ImageURL           string             `json:"image_url"`
	Stock              int                `json:"stock"`
	Sizes              []string           `json:"sizes"`
	Colors             []string           `json:"colors"`
	Customizable       bool               `json:"customizable"`
	LocationSurcharges map[string]float64 `json:"location_surcharges"`
	SizeSurcharges     map[string]float64 `json:"size_surcharges"`
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.BasePrice < 0 {
		return nil, fmt.Errorf("base_price cannot be negative")
	}
	currency := req.Currency
	if currency == "" {
		currency = "ZMW"
	}
	p := &Product{
		ID:                 uuid.New(),
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		BasePrice:          req.BasePrice,
		Currency:           currency,
		ImageURL:           req.ImageURL,
		Stock:              req.Stock,
		Sizes:              req.Sizes,
		Colors:             req.Colors,
		Customizable:       req.Customizable,
		LocationSurcharges: req.LocationSurcharges,
		SizeSurcharges:     req.SizeSurcharges,
		IsActive:           true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, category string, activeOnly bool) ([]*Product, error) {
	return s.repo.List(ctx, category, activeOnly)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.BasePrice = req.BasePrice
	if req.Currency != "" {
		p.Currency = req.Currency
	}
	p.ImageURL = req.ImageURL
	p.Stock = req.Stock
	p.Sizes = req.Sizes
	p.Colors = req.Colors
	p.Customizable = req.Customizable
	p.LocationSurcharges = req.LocationSurcharges
	p.SizeSurcharges = req.SizeSurcharges
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
