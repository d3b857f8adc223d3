package repository

import (
	"context"

	"workforce/internal/domain/entity"
)

// MessageRepository manages conversations, keyed by the canonical unordered
// participant pair.
type MessageRepository interface {
	// Append stores a message in the conversation between from and to,
	// creating the conversation lazily, and returns the stored message with
	// its generated id and timestamp.
	Append(ctx context.Context, from, to, text, orderID string) (*entity.Message, error)

	// Conversation returns the shared ordered sequence for the pair, in
	// either participant order. A missing conversation is an empty slice,
	// not an error.
	Conversation(ctx context.Context, a, b string) ([]*entity.Message, error)
}
