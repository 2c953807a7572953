package user

import (
	"context"
	"encoding/json"
)

// Service defines the interface for user-related business logic.
type Service interface {
	RegisterUser(ctx context.Context, email, password, firstName, lastName string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*User, error)
}

// UpdateProfileRequest holds the editable profile fields. Nil pointers leave
// the stored value untouched.
type UpdateProfileRequest struct {
	FirstName       *string         `json:"first_name,omitempty"`
	LastName        *string         `json:"last_name,omitempty"`
	ShippingAddress json.RawMessage `json:"shipping_address,omitempty"`
	HeightCm        *float64        `json:"height_cm,omitempty"`
	WeightKg        *float64        `json:"weight_kg,omitempty"`
}
