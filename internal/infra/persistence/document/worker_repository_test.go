package document

import (
	"context"
	"testing"

	"workforce/internal/domain/entity"
	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyWorker(t *testing.T, repo repository.WorkerRepository, id string, role entity.Role) *entity.Worker {
	t.Helper()

	worker, err := repo.CreateApplication(context.Background(), repository.WorkerApplication{
		UserID:    id,
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada@example.com",
		Phone:     "+2348000000000",
		Role:      role,
		State:     "Lagos",
	})
	require.NoError(t, err)

	return worker
}

func TestCreateApplicationStoresPendingWorker(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkerRepository(store)

	worker := applyWorker(t, repo, "u1", entity.RoleRider)

	assert.Equal(t, entity.WorkerStatusPending, worker.Status)
	assert.Contains(t, worker.ApplicationID, "_u1")
	assert.Nil(t, worker.ApprovedAt)

	require.NoError(t, store.View(func(doc *entity.Document) error {
		assert.Equal(t, 1, doc.Statistics.WorkersToday)
		require.Len(t, doc.Backups, 1)
		assert.Equal(t, entity.BackupWorkerApplication, doc.Backups[0].Type)
		assert.Equal(t, "u1", doc.Backups[0].UserID)

		return nil
	}))
}

func TestApproveStampsApprovalAndGrantsAdmins(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkerRepository(store)

	applyWorker(t, repo, "rider", entity.RoleRider)
	applyWorker(t, repo, "chief", entity.RoleAdmin)

	rider, err := repo.Approve(context.Background(), "rider", "root")
	require.NoError(t, err)
	assert.Equal(t, entity.WorkerStatusApproved, rider.Status)
	require.NotNil(t, rider.ApprovedAt)
	assert.Equal(t, "root", rider.ApprovedBy)

	granted, err := repo.HasGrant(context.Background(), "rider")
	require.NoError(t, err)
	assert.False(t, granted)

	_, err = repo.Approve(context.Background(), "chief", "root")
	require.NoError(t, err)

	granted, err = repo.HasGrant(context.Background(), "chief")
	require.NoError(t, err)
	assert.True(t, granted)
}

func TestApproveUnknownWorker(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkerRepository(store)

	_, err := repo.Approve(context.Background(), "ghost", "root")
	assert.ErrorIs(t, err, domainerrors.ErrWorkerNotFound)
}

func TestRejectRemovesWorkerEntirely(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkerRepository(store)

	applyWorker(t, repo, "u1", entity.RoleCustomerService)
	require.NoError(t, repo.Reject(context.Background(), "u1"))

	_, err := repo.Find(context.Background(), "u1")
	assert.ErrorIs(t, err, domainerrors.ErrWorkerNotFound)

	// Reapplying after rejection starts from scratch.
	worker := applyWorker(t, repo, "u1", entity.RoleCustomerService)
	assert.Equal(t, entity.WorkerStatusPending, worker.Status)
}

func TestPromoteRequiresApprovedWorker(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkerRepository(store)

	applyWorker(t, repo, "u1", entity.RoleCustomerService)

	err := repo.Promote(context.Background(), "u1", "root")
	assert.ErrorIs(t, err, domainerrors.ErrWorkerNotApproved)

	_, err = repo.Approve(context.Background(), "u1", "root")
	require.NoError(t, err)
	require.NoError(t, repo.Promote(context.Background(), "u1", "root"))

	worker, err := repo.Find(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, worker.Role)

	granted, err := repo.HasGrant(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, granted)
}

func TestDemoteRevertsToCustomerService(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkerRepository(store)

	applyWorker(t, repo, "u1", entity.RoleRider)
	_, err := repo.Approve(context.Background(), "u1", "root")
	require.NoError(t, err)
	require.NoError(t, repo.Promote(context.Background(), "u1", "root"))

	require.NoError(t, repo.Demote(context.Background(), "u1", "root"))

	worker, err := repo.Find(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomerService, worker.Role)

	granted, err := repo.HasGrant(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, granted)

	err = repo.Demote(context.Background(), "u1", "root")
	assert.ErrorIs(t, err, domainerrors.ErrWorkerNotAdmin)
}

func TestPromoteDemoteUnknownWorker(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkerRepository(store)

	err := repo.Promote(context.Background(), "ghost", "root")
	assert.ErrorIs(t, err, domainerrors.ErrWorkerNotFound)

	err = repo.Demote(context.Background(), "ghost", "root")
	assert.ErrorIs(t, err, domainerrors.ErrWorkerNotFound)
}

func TestDeleteSnapshotsWorkerIntoAudit(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkerRepository(store)

	applyWorker(t, repo, "u1", entity.RoleAdmin)
	_, err := repo.Approve(context.Background(), "u1", "root")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), "u1", "root"))

	_, err = repo.Find(context.Background(), "u1")
	assert.ErrorIs(t, err, domainerrors.ErrWorkerNotFound)

	granted, err := repo.HasGrant(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, granted)

	require.NoError(t, store.View(func(doc *entity.Document) error {
		last := doc.Backups[len(doc.Backups)-1]
		assert.Equal(t, entity.BackupWorkerDeleted, last.Type)
		assert.Equal(t, "root", last.DeletedBy)
		require.NotNil(t, last.WorkerData)
		assert.Equal(t, "u1", last.WorkerData.ID)

		return nil
	}))
}

func TestListOrdersNewestApplicationFirst(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkerRepository(store)

	applyWorker(t, repo, "first", entity.RoleRider)
	applyWorker(t, repo, "second", entity.RoleRider)

	workers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.False(t, workers[0].AppliedAt.Before(workers[1].AppliedAt))
}

func TestLifecycleAuditStaysBounded(t *testing.T) {
	store := newTestStore(t)
	repo := NewWorkerRepository(store)

	for i := 0; i < entity.MaxLifecycleRecords+10; i++ {
		applyWorker(t, repo, "u1", entity.RoleCustomerService)
	}

	require.NoError(t, store.View(func(doc *entity.Document) error {
		assert.Len(t, doc.Backups, entity.MaxLifecycleRecords)

		return nil
	}))
}
