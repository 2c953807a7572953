package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item offered in the storefront catalog.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	BasePrice   float64   `json:"base_price"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"image_url,omitempty"`
	Stock       int       `json:"stock"`
	Sizes       []string  `json:"sizes,omitempty"`
	Colors      []string  `json:"colors,omitempty"`

	// Customizable products accept print personalization; the surcharge maps
	// override the storefront's default print-location and print-size fees.
	Customizable       bool               `json:"customizable"`
	LocationSurcharges map[string]float64 `json:"location_surcharges,omitempty"`
	SizeSurcharges     map[string]float64 `json:"size_surcharges,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductSnapshot is the subset checkout revalidates a cart line against.
type ProductSnapshot struct {
	BasePrice float64
	Stock     int
	Active    bool
}
