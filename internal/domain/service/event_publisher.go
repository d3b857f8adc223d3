package service

import (
	"context"
	"time"
)

// Lifecycle event types published to the notifier boundary. The chat-bot
// layer consumes these to render its own messages; the core never formats
// notification text.
const (
	EventWorkerApplied  = "worker_applied"
	EventWorkerApproved = "worker_approved"
	EventWorkerRejected = "worker_rejected"
	EventOrderCreated   = "order_created"
	EventOrderAssigned  = "order_assigned"
	EventMessageSent    = "message_sent"
)

// LifecycleEvent carries the identifiers and enums an external notifier
// needs to render a workforce lifecycle change.
type LifecycleEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	Type      string    `json:"type"`
	UserID    string    `json:"user_id,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	Role      string    `json:"role,omitempty"`
	Status    string    `json:"status,omitempty"`
	Actor     string    `json:"actor,omitempty"` // The admin or worker who caused the change.
	Recipient string    `json:"recipient,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher defines the interface for publishing lifecycle events to a
// message queue
type EventPublisher interface {
	// PublishLifecycleEvent publishes a lifecycle event for async processing
	PublishLifecycleEvent(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
