package entity

import (
	"fmt"
	"time"
)

// Order is a customer purchase request moving through the forward-only
// pending/processing/delivered lifecycle. Orders are never deleted.
type Order struct {
	ID             string      `json:"id"` // Generated id derived from creation time, e.g. "order_1700000000000".
	CustomerName   string      `json:"customerName"`
	CustomerPhone  string      `json:"customerPhone"`
	AlternatePhone string      `json:"alternatePhone,omitempty"`
	Product        string      `json:"product"`
	Quantity       int         `json:"quantity"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`

	// Assignment records a responsible worker without advancing the status.
	// Re-assignment overwrites these fields.
	AssignedTo string     `json:"assignedTo,omitempty"`
	AssignedBy string     `json:"assignedBy,omitempty"`
	AssignedAt *time.Time `json:"assignedAt"`

	ProcessedBy string     `json:"processedBy,omitempty"`
	ProcessedAt *time.Time `json:"processedAt"`

	DeliveredBy string     `json:"deliveredBy,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt"`

	// Comments is append-only and accepts entries at any status.
	Comments []OrderComment `json:"comments"`
}

// OrderComment is a free-form note attached to an order.
type OrderComment struct {
	Comment     string    `json:"comment"`
	CommentedBy string    `json:"commentedBy"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOrderID derives the order id from its creation time.
func NewOrderID(createdAt time.Time) string {
	return fmt.Sprintf("order_%d", createdAt.UnixMilli())
}
