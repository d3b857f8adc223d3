package impl

import (
	"context"
	"testing"

	"workforce/internal/domain/entity"
	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/infra/docstore"
	"workforce/internal/infra/persistence/document"
	"workforce/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *docstore.Store) {
	t.Helper()

	store := newTestStore(t)
	userRepo := document.NewUserRepository(store)
	workerRepo := document.NewWorkerRepository(store)
	statsRepo := document.NewStatsRepository(store)

	return NewUserService(userRepo, workerRepo, statsRepo, testSuperAdmin), store
}

func TestCreateOrUpdateUserRequiresID(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.CreateOrUpdateUser(context.Background(), usecase.UserInput{FirstName: "Ada"})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestGetUserSnapshotForPlainUser(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.CreateOrUpdateUser(ctx, usecase.UserInput{ID: "u1", FirstName: "Ada"})
	require.NoError(t, err)

	snap, err := svc.GetUserSnapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", snap.User.FirstName)
	assert.Nil(t, snap.Worker)
	assert.False(t, snap.IsAdmin)
	assert.False(t, snap.IsSuperAdmin)
	assert.Equal(t, entity.DefaultSettings().WebWelcomeMessage, snap.WelcomeMessage)
}

func TestGetUserSnapshotForSuperAdmin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.CreateOrUpdateUser(ctx, usecase.UserInput{ID: testSuperAdmin, FirstName: "Boss"})
	require.NoError(t, err)

	snap, err := svc.GetUserSnapshot(ctx, testSuperAdmin)
	require.NoError(t, err)
	assert.True(t, snap.IsAdmin)
	assert.True(t, snap.IsSuperAdmin)
	assert.Equal(t, entity.DefaultSettings().AdminWelcomeMessage, snap.WelcomeMessage)
}

func TestGetUserSnapshotIncludesWorkerRecord(t *testing.T) {
	svc, store := newUserService(t)
	ctx := context.Background()

	_, err := svc.CreateOrUpdateUser(ctx, usecase.UserInput{ID: "u1", FirstName: "Ada"})
	require.NoError(t, err)

	workers := document.NewWorkerRepository(store)
	workerSvc := NewWorkerService(workers, &recordingPublisher{}, discardLogger(), testSuperAdmin)
	_, err = workerSvc.Apply(ctx, riderInput("u1"))
	require.NoError(t, err)

	snap, err := svc.GetUserSnapshot(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, snap.Worker)
	assert.Equal(t, entity.RoleRider, snap.Worker.Role)
}

func TestGetUserSnapshotUnknownUser(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetUserSnapshot(context.Background(), "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
