package review

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "PENDING"
	StatusApproved ReviewStatus = "APPROVED"
	StatusRejected ReviewStatus = "REJECTED"
)

// Review is a customer's product review. Reviews start PENDING and only
// show on the storefront once an admin approves them.
type Review struct {
	ID         uuid.UUID    `json:"id"`
	ProductID  string       `json:"product_id"`
	CustomerID string       `json:"customer_id"`
	Rating     int          `json:"rating"`
	Title      string       `json:"title,omitempty"`
	Body       string       `json:"body,omitempty"`
	Status     ReviewStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
