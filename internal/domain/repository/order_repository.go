package repository

import (
	"context"

	"workforce/internal/domain/entity"
)

// OrderIntake carries the fields of a new customer order.
type OrderIntake struct {
	CustomerName   string
	CustomerPhone  string
	AlternatePhone string
	Product        string
	Quantity       int
}

// OrderRepository manages the Order entity map. Status transitions are
// validated inside the mutation cycle and can only move forward.
type OrderRepository interface {
	// Find returns the order or entity not found.
	Find(ctx context.Context, id string) (*entity.Order, error)

	// List returns all orders, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// Create stores a pending order and bumps the daily order counters.
	Create(ctx context.Context, intake OrderIntake) (*entity.Order, error)

	// Assign records the responsible worker without changing the status.
	// Re-assignment overwrites the previous assignment.
	Assign(ctx context.Context, id, assignedTo, assignedBy string) error

	// Process advances the order to processing.
	Process(ctx context.Context, id, processedBy string) error

	// Deliver advances the order to delivered and credits the delivering
	// worker's monthly counter if that worker exists.
	Deliver(ctx context.Context, id, deliveredBy string) error

	// AddComment appends a comment; allowed at any status.
	AddComment(ctx context.Context, id, comment, commentedBy string) error
}
