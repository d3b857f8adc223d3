package usecase

import (
	"context"

	"workforce/internal/domain/entity"
)

// OrderInput carries the fields of a new customer order.
type OrderInput struct {
	CustomerName   string `json:"customerName" validate:"required"`
	CustomerPhone  string `json:"customerPhone" validate:"required"`
	AlternatePhone string `json:"alternatePhone"`
	Product        string `json:"product" validate:"required"`
	Quantity       int    `json:"quantity"`
}

// OrderUsecase drives the forward-only order lifecycle. Assignment is
// admin-gated; processing and delivery trust the transport layer to have
// identified the worker.
type OrderUsecase interface {
	// Create stores a pending order. Intake always succeeds once input
	// validation passes.
	Create(ctx context.Context, input OrderInput) (*entity.Order, error)

	// Get returns a single order.
	Get(ctx context.Context, id string) (*entity.Order, error)

	// List returns all orders, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// Assign records the responsible worker without changing the status.
	Assign(ctx context.Context, id, workerID, actor string) error

	// Process advances the order to processing.
	Process(ctx context.Context, id, actor string) error

	// Deliver advances the order to delivered.
	Deliver(ctx context.Context, id, actor string) error

	// AddComment appends a comment at any status.
	AddComment(ctx context.Context, id, comment, actor string) error
}
