package impl

import (
	"context"
	"log/slog"
	"strings"

	"workforce/internal/domain/entity"
	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/domain/repository"
	"workforce/internal/domain/service"
	"workforce/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type workerService struct {
	workerRepo repository.WorkerRepository
	auth       *authorizer
	publisher  service.EventPublisher
	logger     *slog.Logger
	validate   *validator.Validate
}

// NewWorkerService creates a new worker service instance
func NewWorkerService(
	workerRepo repository.WorkerRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
	superAdminID string,
) usecase.WorkerUsecase {
	return &workerService{
		workerRepo: workerRepo,
		auth:       &authorizer{superAdminID: superAdminID, workerRepo: workerRepo},
		publisher:  publisher,
		logger:     logger,
		validate:   validator.New(),
	}
}

// Apply validates and stores a pending application.
func (s *workerService) Apply(ctx context.Context, input usecase.WorkerApplicationInput) (*entity.Worker, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	role := entity.Role(strings.ToLower(strings.TrimSpace(input.Role)))
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role)
	}

	state := strings.TrimSpace(input.State)
	if role == entity.RoleRider {
		if state == "" {
			return nil, domainerrors.ErrRegionRequired
		}
		if !entity.IsValidRegion(state) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown state/region: " + state)
		}
	}

	worker, err := s.workerRepo.CreateApplication(ctx, repository.WorkerApplication{
		UserID:    input.UserID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      role,
		State:     state,
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.logger, &service.LifecycleEvent{
		Type:   service.EventWorkerApplied,
		UserID: worker.ID,
		Role:   worker.Role.String(),
		Status: string(worker.Status),
	})

	return worker, nil
}

func (s *workerService) Get(ctx context.Context, id string) (*entity.Worker, error) {
	return s.workerRepo.Find(ctx, id)
}

func (s *workerService) List(ctx context.Context) ([]*entity.Worker, error) {
	return s.workerRepo.List(ctx)
}

// Approve moves a pending application to approved. Admin-gated.
func (s *workerService) Approve(ctx context.Context, id, actor string) (*entity.Worker, error) {
	if err := s.auth.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.Approve(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.logger, &service.LifecycleEvent{
		Type:   service.EventWorkerApproved,
		UserID: worker.ID,
		Role:   worker.Role.String(),
		Status: string(worker.Status),
		Actor:  actor,
	})

	return worker, nil
}

// Reject removes the application entirely. Admin-gated and destructive.
func (s *workerService) Reject(ctx context.Context, id, actor string) error {
	if err := s.auth.requireAdmin(ctx, actor); err != nil {
		return err
	}

	if err := s.workerRepo.Reject(ctx, id); err != nil {
		return err
	}

	publishEvent(ctx, s.publisher, s.logger, &service.LifecycleEvent{
		Type:   service.EventWorkerRejected,
		UserID: id,
		Actor:  actor,
	})

	return nil
}

// Delete removes the worker with an audit snapshot. Admin-gated.
func (s *workerService) Delete(ctx context.Context, id, actor string) error {
	if err := s.auth.requireAdmin(ctx, actor); err != nil {
		return err
	}

	return s.workerRepo.Delete(ctx, id, actor)
}

// MakeAdmin promotes an approved worker to the admin role. Only the super
// admin can grant privilege.
func (s *workerService) MakeAdmin(ctx context.Context, id, actor string) error {
	if err := s.auth.requireSuperAdmin(actor); err != nil {
		return err
	}

	return s.workerRepo.Promote(ctx, id, actor)
}

// RemoveAdmin demotes an admin worker back to customer_service.
func (s *workerService) RemoveAdmin(ctx context.Context, id, actor string) error {
	if err := s.auth.requireSuperAdmin(actor); err != nil {
		return err
	}

	return s.workerRepo.Demote(ctx, id, actor)
}

func (s *workerService) IsAdmin(ctx context.Context, id string) (bool, error) {
	return s.auth.isAdmin(ctx, id)
}

func (s *workerService) IsSuperAdmin(id string) bool {
	return s.auth.isSuperAdmin(id)
}
