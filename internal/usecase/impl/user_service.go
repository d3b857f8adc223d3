package impl

import (
	"context"
	"errors"

	"workforce/internal/domain/entity"
	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/domain/repository"
	"workforce/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type userService struct {
	userRepo   repository.UserRepository
	workerRepo repository.WorkerRepository
	statsRepo  repository.StatsRepository
	auth       *authorizer
	validate   *validator.Validate
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo repository.UserRepository,
	workerRepo repository.WorkerRepository,
	statsRepo repository.StatsRepository,
	superAdminID string,
) usecase.UserUsecase {
	return &userService{
		userRepo:   userRepo,
		workerRepo: workerRepo,
		statsRepo:  statsRepo,
		auth:       &authorizer{superAdminID: superAdminID, workerRepo: workerRepo},
		validate:   validator.New(),
	}
}

// CreateOrUpdateUser upserts the profile.
func (s *userService) CreateOrUpdateUser(ctx context.Context, input usecase.UserInput) (*entity.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return s.userRepo.Upsert(ctx, &entity.User{
		ID:        input.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	})
}

// GetUserSnapshot returns the profile plus the authorization predicates the
// notifier layer renders from.
func (s *userService) GetUserSnapshot(ctx context.Context, id string) (*usecase.UserSnapshot, error) {
	user, err := s.userRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	// A user without a worker record is still a valid user.
	worker, err := s.workerRepo.Find(ctx, id)
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	admin, err := s.auth.isAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	settings, err := s.statsRepo.Settings(ctx)
	if err != nil {
		return nil, err
	}

	welcome := settings.WebWelcomeMessage
	if admin {
		welcome = settings.AdminWelcomeMessage
	}

	return &usecase.UserSnapshot{
		User:           user,
		Worker:         worker,
		IsAdmin:        admin,
		IsSuperAdmin:   s.auth.isSuperAdmin(id),
		WelcomeMessage: welcome,
	}, nil
}

// isNotFound reports whether err is one of the not-found domain errors.
func isNotFound(err error) bool {
	return errors.Is(err, domainerrors.ErrWorkerNotFound) ||
		errors.Is(err, domainerrors.ErrUserNotFound) ||
		errors.Is(err, domainerrors.ErrOrderNotFound)
}
