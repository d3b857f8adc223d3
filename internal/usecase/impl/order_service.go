package impl

import (
	"context"
	"log/slog"

	"workforce/internal/domain/entity"
	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/domain/repository"
	"workforce/internal/domain/service"
	"workforce/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type orderService struct {
	orderRepo repository.OrderRepository
	auth      *authorizer
	publisher service.EventPublisher
	logger    *slog.Logger
	validate  *validator.Validate
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	workerRepo repository.WorkerRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
	superAdminID string,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		auth:      &authorizer{superAdminID: superAdminID, workerRepo: workerRepo},
		publisher: publisher,
		logger:    logger,
		validate:  validator.New(),
	}
}

// Create stores a pending order.
func (s *orderService) Create(ctx context.Context, input usecase.OrderInput) (*entity.Order, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	order, err := s.orderRepo.Create(ctx, repository.OrderIntake{
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		AlternatePhone: input.AlternatePhone,
		Product:        input.Product,
		Quantity:       input.Quantity,
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.logger, &service.LifecycleEvent{
		Type:    service.EventOrderCreated,
		OrderID: order.ID,
		Status:  string(order.Status),
	})

	return order, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	return s.orderRepo.Find(ctx, id)
}

func (s *orderService) List(ctx context.Context) ([]*entity.Order, error) {
	return s.orderRepo.List(ctx)
}

// Assign records the responsible worker. Admin-gated; the status does not
// change until the worker processes the order.
func (s *orderService) Assign(ctx context.Context, id, workerID, actor string) error {
	if err := s.auth.requireAdmin(ctx, actor); err != nil {
		return err
	}

	if err := s.orderRepo.Assign(ctx, id, workerID, actor); err != nil {
		return err
	}

	publishEvent(ctx, s.publisher, s.logger, &service.LifecycleEvent{
		Type:      service.EventOrderAssigned,
		OrderID:   id,
		Actor:     actor,
		Recipient: workerID,
	})

	return nil
}

func (s *orderService) Process(ctx context.Context, id, actor string) error {
	return s.orderRepo.Process(ctx, id, actor)
}

func (s *orderService) Deliver(ctx context.Context, id, actor string) error {
	return s.orderRepo.Deliver(ctx, id, actor)
}

func (s *orderService) AddComment(ctx context.Context, id, comment, actor string) error {
	if comment == "" {
		return domainerrors.ErrValidationFailed.WithDetails("comment must not be empty")
	}

	return s.orderRepo.AddComment(ctx, id, comment, actor)
}
