package document

import (
	"context"
	"time"

	"workforce/internal/domain/entity"
	"workforce/internal/domain/repository"
	"workforce/internal/infra/docstore"
)

type messageRepository struct {
	store *docstore.Store
}

// NewMessageRepository creates a MessageRepository backed by the document
// store.
func NewMessageRepository(store *docstore.Store) repository.MessageRepository {
	return &messageRepository{store: store}
}

func (r *messageRepository) Append(ctx context.Context, from, to, text, orderID string) (*entity.Message, error) {
	var stored *entity.Message
	err := r.store.Update(func(doc *entity.Document) error {
		now := nowUTC()
		key := entity.ConversationKey(from, to)

		id := entity.NewMessageID(now)
		for hasMessageID(doc.Messages[key], id) {
			now = now.Add(time.Millisecond)
			id = entity.NewMessageID(now)
		}

		msg := &entity.Message{
			ID:        id,
			From:      from,
			To:        to,
			Message:   text,
			OrderID:   orderID,
			Timestamp: now,
			Read:      false,
		}
		doc.Messages[key] = append(doc.Messages[key], msg)

		stored = msg

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (r *messageRepository) Conversation(ctx context.Context, a, b string) ([]*entity.Message, error) {
	var messages []*entity.Message
	err := r.store.View(func(doc *entity.Document) error {
		stored := doc.Messages[entity.ConversationKey(a, b)]
		messages = make([]*entity.Message, len(stored))
		copy(messages, stored)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func hasMessageID(messages []*entity.Message, id string) bool {
	for _, msg := range messages {
		if msg.ID == id {
			return true
		}
	}

	return false
}
