package usecase

import (
	"context"

	"workforce/internal/domain/entity"
)

// MessageInput carries one message send.
type MessageInput struct {
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required"`
	Message string `json:"message" validate:"required"`
	OrderID string `json:"orderId"`
}

// MessageUsecase manages conversations between two participants.
type MessageUsecase interface {
	// Send appends a message to the shared conversation and returns it with
	// its generated id and timestamp.
	Send(ctx context.Context, input MessageInput) (*entity.Message, error)

	// Conversation returns the shared ordered sequence for the pair, in
	// either participant order.
	Conversation(ctx context.Context, a, b string) ([]*entity.Message, error)
}
