package wishlist

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one saved product on a customer's wishlist. Unlike cart line
// items there is no quantity and no merge rule: a product is either on the
// list or it is not.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image,omitempty"`
	UnitPrice  float64   `json:"unit_price"`
	AddedAt    time.Time `json:"added_at"`
}
