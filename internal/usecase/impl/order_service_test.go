package impl

import (
	"context"
	"testing"

	"workforce/internal/domain/entity"
	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/infra/persistence/document"
	"workforce/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (usecase.OrderUsecase, *recordingPublisher) {
	t.Helper()

	store := newTestStore(t)
	publisher := &recordingPublisher{}
	orderRepo := document.NewOrderRepository(store)
	workerRepo := document.NewWorkerRepository(store)

	return NewOrderService(orderRepo, workerRepo, publisher, discardLogger(), testSuperAdmin), publisher
}

func orderInput() usecase.OrderInput {
	return usecase.OrderInput{
		CustomerName:  "Chinedu",
		CustomerPhone: "+2348111111111",
		Product:       "Rice 50kg",
		Quantity:      2,
	}
}

func TestCreateOrderPublishesEvent(t *testing.T) {
	svc, publisher := newOrderService(t)

	order, err := svc.Create(context.Background(), orderInput())
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, []string{"order_created"}, publisher.types())
}

func TestCreateOrderValidatesInput(t *testing.T) {
	svc, publisher := newOrderService(t)

	input := orderInput()
	input.CustomerPhone = ""

	_, err := svc.Create(context.Background(), input)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Empty(t, publisher.types())
}

func TestAssignIsAdminGated(t *testing.T) {
	svc, publisher := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, orderInput())
	require.NoError(t, err)

	err = svc.Assign(ctx, order.ID, "rider1", "stranger")
	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)

	require.NoError(t, svc.Assign(ctx, order.ID, "rider1", testSuperAdmin))
	assert.Contains(t, publisher.types(), "order_assigned")

	got, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "rider1", got.AssignedTo)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
}

func TestProcessAndDeliverAdvanceStatus(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, orderInput())
	require.NoError(t, err)

	require.NoError(t, svc.Process(ctx, order.ID, "w1"))
	require.NoError(t, svc.Deliver(ctx, order.ID, "w1"))

	err = svc.Process(ctx, order.ID, "w1")
	assert.ErrorIs(t, err, domainerrors.ErrOrderTransition)
}

func TestAddCommentRejectsEmpty(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, orderInput())
	require.NoError(t, err)

	err = svc.AddComment(ctx, order.ID, "", "w1")
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	require.NoError(t, svc.AddComment(ctx, order.ID, "call first", "w1"))
}
