package usecase

import (
	"context"

	"workforce/internal/domain/entity"
)

// WorkerApplicationInput carries the fields of a worker application.
type WorkerApplicationInput struct {
	UserID    string `json:"userId" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone" validate:"required"`
	Role      string `json:"role" validate:"required"`
	State     string `json:"state"`
}

// WorkerUsecase drives the worker lifecycle. Approve, reject and delete are
// admin-gated; promote and demote are super-admin-gated. Authorization is
// checked here, at the call boundary, before any mutation runs.
type WorkerUsecase interface {
	// Apply validates and stores a pending application. Riders must name an
	// operating region.
	Apply(ctx context.Context, input WorkerApplicationInput) (*entity.Worker, error)

	// Get returns a single worker.
	Get(ctx context.Context, id string) (*entity.Worker, error)

	// List returns all workers, newest application first.
	List(ctx context.Context) ([]*entity.Worker, error)

	// Approve moves a pending application to approved.
	Approve(ctx context.Context, id, actor string) (*entity.Worker, error)

	// Reject removes the application entirely.
	Reject(ctx context.Context, id, actor string) error

	// Delete removes an approved worker, snapshotting it into the audit log.
	Delete(ctx context.Context, id, actor string) error

	// MakeAdmin promotes an approved worker to the admin role.
	MakeAdmin(ctx context.Context, id, actor string) error

	// RemoveAdmin demotes an admin worker back to customer_service.
	RemoveAdmin(ctx context.Context, id, actor string) error

	// IsAdmin reports whether id is the super admin or holds a grant.
	IsAdmin(ctx context.Context, id string) (bool, error)

	// IsSuperAdmin reports whether id is the configured super admin.
	IsSuperAdmin(id string) bool
}
