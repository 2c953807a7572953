package checkout

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending      OrderStatus = "PENDING"
	StatusConfirmed    OrderStatus = "CONFIRMED"
	StatusInProduction OrderStatus = "IN_PRODUCTION"
	StatusReady        OrderStatus = "READY"
	StatusDelivered    OrderStatus = "DELIVERED"
	StatusCancelled    OrderStatus = "CANCELLED"
)

// Order is a placed storefront order.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      *uuid.UUID      `json:"customer_id,omitempty"` // nil for guest checkout
	OrderNumber     string          `json:"order_number"`
	Status          OrderStatus     `json:"status"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
	Currency        string          `json:"currency"`
	Notes           string          `json:"notes,omitempty"`
	DeliveryAddress json.RawMessage `json:"delivery_address,omitempty"`
	Items           []*OrderItem    `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is one line of a placed order, frozen at checkout time.
type OrderItem struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Size          string          `json:"size,omitempty"`
	Color         string          `json:"color,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     float64         `json:"unit_price"`
	LineTotal     float64         `json:"line_total"`
	IsCustomOrder bool            `json:"is_custom_order"`
	Customization json.RawMessage `json:"customization,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PlaceOrderRequest is the payload for checking out a cart.
type PlaceOrderRequest struct {
	CartID          string          `json:"cart_id"`
	CustomerID      string          `json:"customer_id,omitempty"` // optional for guest checkout
	Notes           string          `json:"notes,omitempty"`
	DeliveryAddress json.RawMessage `json:"delivery_address,omitempty"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
