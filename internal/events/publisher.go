package events

import (
	"context"
	"time"
)

// OrderPlaced is emitted after checkout persists an order. Downstream
// services (fulfilment routing, notifications) consume it; the storefront
// only produces.
type OrderPlaced struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	CustomerID  string    `json:"customer_id,omitempty"`
	Total       float64   `json:"total"`
	Currency    string    `json:"currency"`
	ItemCount   int       `json:"item_count"`
	PlacedAt    time.Time `json:"placed_at"`
}

// Publisher emits storefront domain events.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlaced) error
	Close() error
}

// NopPublisher discards every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, OrderPlaced) error { return nil }
func (NopPublisher) Close() error                                          { return nil }
