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

type messageService struct {
	messageRepo repository.MessageRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	validate    *validator.Validate
}

// NewMessageService creates a new message service instance
func NewMessageService(
	messageRepo repository.MessageRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MessageUsecase {
	return &messageService{
		messageRepo: messageRepo,
		publisher:   publisher,
		logger:      logger,
		validate:    validator.New(),
	}
}

// Send appends a message to the shared conversation.
func (s *messageService) Send(ctx context.Context, input usecase.MessageInput) (*entity.Message, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	msg, err := s.messageRepo.Append(ctx, input.From, input.To, input.Message, input.OrderID)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.logger, &service.LifecycleEvent{
		Type:      service.EventMessageSent,
		UserID:    msg.From,
		Recipient: msg.To,
		OrderID:   msg.OrderID,
	})

	return msg, nil
}

func (s *messageService) Conversation(ctx context.Context, a, b string) ([]*entity.Message, error) {
	return s.messageRepo.Conversation(ctx, a, b)
}
