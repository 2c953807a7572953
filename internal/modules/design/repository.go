package design

import "context"

// ProductPricing carries the pricing inputs a quote needs from the product
// being customized.
type ProductPricing struct {
	BasePrice          float64
	Customizable       bool
	LocationSurcharges map[string]float64
	SizeSurcharges     map[string]float64
}

// Repository defines data access for design templates and quote inputs.
type Repository interface {
	// CreateDesign persists a new template.
	CreateDesign(ctx context.Context, d *Design) error

	// GetDesign retrieves a template by UUID.
	GetDesign(ctx context.Context, id string) (*Design, error)

	// ListDesigns returns templates, restricted to active ones when asked.
	ListDesigns(ctx context.Context, activeOnly bool) ([]*Design, error)

	// ProductPricing fetches the base price and surcharge overrides for the
	// product being customized.
	ProductPricing(ctx context.Context, productID string) (ProductPricing, error)
}
