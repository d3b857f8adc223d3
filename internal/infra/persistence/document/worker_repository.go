package document

import (
	"context"
	"sort"

	"workforce/internal/domain/entity"
	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/domain/repository"
	"workforce/internal/infra/docstore"
)

type workerRepository struct {
	store *docstore.Store
}

// NewWorkerRepository creates a WorkerRepository backed by the document
// store.
func NewWorkerRepository(store *docstore.Store) repository.WorkerRepository {
	return &workerRepository{store: store}
}

func (r *workerRepository) Find(ctx context.Context, id string) (*entity.Worker, error) {
	var found *entity.Worker
	err := r.store.View(func(doc *entity.Document) error {
		worker, ok := doc.Workers[id]
		if !ok {
			return domainerrors.ErrWorkerNotFound
		}
		found = worker

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// List returns all workers, newest application first.
func (r *workerRepository) List(ctx context.Context) ([]*entity.Worker, error) {
	var workers []*entity.Worker
	err := r.store.View(func(doc *entity.Document) error {
		workers = make([]*entity.Worker, 0, len(doc.Workers))
		for _, worker := range doc.Workers {
			workers = append(workers, worker)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(workers, func(i, j int) bool {
		return workers[i].AppliedAt.After(workers[j].AppliedAt)
	})

	return workers, nil
}

// CreateApplication stores a pending application, counts it against today
// and appends a lifecycle audit entry.
func (r *workerRepository) CreateApplication(ctx context.Context, app repository.WorkerApplication) (*entity.Worker, error) {
	var stored *entity.Worker
	err := r.store.Update(func(doc *entity.Document) error {
		now := nowUTC()
		worker := &entity.Worker{
			ID:            app.UserID,
			ApplicationID: entity.NewApplicationID(now, app.UserID),
			FirstName:     app.FirstName,
			LastName:      app.LastName,
			Email:         app.Email,
			Phone:         app.Phone,
			Role:          app.Role,
			State:         app.State,
			Status:        entity.WorkerStatusPending,
			AppliedAt:     now,
		}
		doc.Workers[app.UserID] = worker
		doc.Statistics.WorkersToday++

		doc.Backups = entity.AppendBounded(doc.Backups, entity.BackupRecord{
			Type:      entity.BackupWorkerApplication,
			UserID:    app.UserID,
			Role:      app.Role,
			Timestamp: now,
		}, entity.MaxLifecycleRecords)

		stored = worker

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// Approve moves a pending application to approved. Admin-role workers get an
// admin grant if one does not already exist.
func (r *workerRepository) Approve(ctx context.Context, id, approvedBy string) (*entity.Worker, error) {
	var approved *entity.Worker
	err := r.store.Update(func(doc *entity.Document) error {
		worker, ok := doc.Workers[id]
		if !ok {
			return domainerrors.ErrWorkerNotFound
		}

		now := nowUTC()
		worker.Status = entity.WorkerStatusApproved
		worker.ApprovedAt = &now
		worker.ApprovedBy = approvedBy

		if worker.Role == entity.RoleAdmin {
			doc.AddGrant(id, approvedBy, now)
		}

		approved = worker

		return nil
	})
	if err != nil {
		return nil, err
	}

	return approved, nil
}

// Reject removes the worker entirely. Reapplying afterwards starts a fresh
// application with no memory of this one.
func (r *workerRepository) Reject(ctx context.Context, id string) error {
	return r.store.Update(func(doc *entity.Document) error {
		if _, ok := doc.Workers[id]; !ok {
			return domainerrors.ErrWorkerNotFound
		}
		delete(doc.Workers, id)

		return nil
	})
}

// Promote sets role admin on an approved worker and adds a grant.
func (r *workerRepository) Promote(ctx context.Context, id, by string) error {
	return r.store.Update(func(doc *entity.Document) error {
		worker, ok := doc.Workers[id]
		if !ok {
			return domainerrors.ErrWorkerNotFound
		}
		if worker.Status != entity.WorkerStatusApproved {
			return domainerrors.ErrWorkerNotApproved
		}

		worker.Role = entity.RoleAdmin
		doc.AddGrant(id, by, nowUTC())

		return nil
	})
}

// Demote moves an admin worker back to customer_service and deletes the
// grant, whatever role the worker held before promotion.
func (r *workerRepository) Demote(ctx context.Context, id, by string) error {
	return r.store.Update(func(doc *entity.Document) error {
		worker, ok := doc.Workers[id]
		if !ok {
			return domainerrors.ErrWorkerNotFound
		}
		if worker.Role != entity.RoleAdmin {
			return domainerrors.ErrWorkerNotAdmin
		}

		worker.Role = entity.RoleCustomerService
		doc.RemoveGrant(id)

		return nil
	})
}

// Delete removes the worker and any grant, snapshotting the prior state into
// the audit log for manual recovery.
func (r *workerRepository) Delete(ctx context.Context, id, deletedBy string) error {
	return r.store.Update(func(doc *entity.Document) error {
		worker, ok := doc.Workers[id]
		if !ok {
			return domainerrors.ErrWorkerNotFound
		}

		snapshot := *worker
		delete(doc.Workers, id)
		doc.RemoveGrant(id)

		doc.Backups = entity.AppendBounded(doc.Backups, entity.BackupRecord{
			Type:       entity.BackupWorkerDeleted,
			UserID:     id,
			DeletedBy:  deletedBy,
			WorkerData: &snapshot,
			Timestamp:  nowUTC(),
		}, entity.MaxLifecycleRecords)

		return nil
	})
}

func (r *workerRepository) HasGrant(ctx context.Context, id string) (bool, error) {
	var granted bool
	err := r.store.View(func(doc *entity.Document) error {
		granted = doc.HasGrant(id)

		return nil
	})
	if err != nil {
		return false, err
	}

	return granted, nil
}
