package user

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Role distinguishes shoppers from admin-console users.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// User represents a storefront account. Height and weight are optional and
// feed the size recommendation shown next to the size picker.
type User struct {
	ID              uuid.UUID       `json:"id"`
	Email           string          `json:"email"`
	PasswordHash    string          `json:"-"`
	FirstName       string          `json:"first_name,omitempty"`
	LastName        string          `json:"last_name,omitempty"`
	Role            Role            `json:"role"`
	ShippingAddress json.RawMessage `json:"shipping_address,omitempty"`
	HeightCm        *float64        `json:"height_cm,omitempty"`
	WeightKg        *float64        `json:"weight_kg,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
