package repository

import (
	"context"

	"workforce/internal/domain/entity"
)

// WorkerApplication carries the fields of a new worker application.
type WorkerApplication struct {
	UserID    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      entity.Role
	State     string
}

// WorkerRepository manages the Worker entity map, the admin grant list and
// the lifecycle audit entries that go with them. Preconditions are checked
// inside the same mutation cycle as the write, so an interleaved operation
// can never observe a half-applied transition.
type WorkerRepository interface {
	// Find returns the worker or entity not found.
	Find(ctx context.Context, id string) (*entity.Worker, error)

	// List returns all workers, newest application first.
	List(ctx context.Context) ([]*entity.Worker, error)

	// CreateApplication stores a pending application, bumps the daily
	// application counter (rolling the day over first if needed) and appends
	// a worker_application audit entry. An existing worker for the same id
	// is overwritten; callers check status first when that matters.
	CreateApplication(ctx context.Context, app WorkerApplication) (*entity.Worker, error)

	// Approve moves a pending application to approved and, for admin-role
	// workers, idempotently adds an admin grant.
	Approve(ctx context.Context, id, approvedBy string) (*entity.Worker, error)

	// Reject removes the worker entirely. Reapplication starts from scratch.
	Reject(ctx context.Context, id string) error

	// Promote sets role admin on an approved worker and adds a grant.
	Promote(ctx context.Context, id, by string) error

	// Demote moves an admin worker back to customer_service and deletes the
	// grant.
	Demote(ctx context.Context, id, by string) error

	// Delete removes the worker and any grant, appending a worker_deleted
	// audit entry that snapshots the prior state.
	Delete(ctx context.Context, id, deletedBy string) error

	// HasGrant reports whether an admin grant exists for id. The super admin
	// is configured, not granted, and is checked by the caller.
	HasGrant(ctx context.Context, id string) (bool, error)
}
