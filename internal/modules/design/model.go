package design

import (
	"time"

	"github.com/google/uuid"
)

// PrintLocation is where the artwork is placed on the garment.
type PrintLocation string

const (
	LocationFront PrintLocation = "front"
	LocationBack  PrintLocation = "back"
	LocationBoth  PrintLocation = "both"
)

// PrintSize is the artwork print area.
type PrintSize string

const (
	SizeSmall  PrintSize = "small"
	SizeMedium PrintSize = "medium"
	SizeLarge  PrintSize = "large"
)

// Design is a pre-made template a shopper can pick instead of uploading
// their own artwork. Its price is added to the customization quote.
type Design struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url,omitempty"`
	Price     float64   `json:"price"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
