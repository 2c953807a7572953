package cart

import (
	"encoding/json"

	"github.com/google/uuid"
)

// LineItem is one slot in a cart: a quantity of a product variant, or a
// single custom order. Name, image and price are a snapshot taken when the
// item is added; they are not live-synced to later catalog changes.
type LineItem struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Image         string          `json:"image,omitempty"`
	UnitPrice     float64         `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	StockHint     int             `json:"stock_hint"`
	Size          string          `json:"size,omitempty"`
	Color         string          `json:"color,omitempty"`
	IsCustomOrder bool            `json:"is_custom_order"`
	Customization json.RawMessage `json:"customization,omitempty"`
}

// Snapshot is the read view handed to the UI and to checkout: the ordered
// item list plus the derived totals.
type Snapshot struct {
	CartID string     `json:"cart_id"`
	Items  []LineItem `json:"items"`
	Totals
}
