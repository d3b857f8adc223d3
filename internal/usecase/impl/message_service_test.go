package impl

import (
	"context"
	"testing"

	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/infra/persistence/document"
	"workforce/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageService(t *testing.T) (usecase.MessageUsecase, *recordingPublisher) {
	t.Helper()

	store := newTestStore(t)
	publisher := &recordingPublisher{}
	repo := document.NewMessageRepository(store)

	return NewMessageService(repo, publisher, discardLogger()), publisher
}

func TestSendAppendsAndPublishes(t *testing.T) {
	svc, publisher := newMessageService(t)
	ctx := context.Background()

	msg, err := svc.Send(ctx, usecase.MessageInput{
		From:    "alice",
		To:      "bob",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.Contains(t, msg.ID, "msg_")
	assert.Equal(t, []string{"message_sent"}, publisher.types())

	_, err = svc.Send(ctx, usecase.MessageInput{From: "alice", To: "bob"})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestConversationSharedBothWays(t *testing.T) {
	svc, _ := newMessageService(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, usecase.MessageInput{From: "alice", To: "bob", Message: "hi"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, usecase.MessageInput{From: "bob", To: "alice", Message: "hey"})
	require.NoError(t, err)

	forward, err := svc.Conversation(ctx, "alice", "bob")
	require.NoError(t, err)
	backward, err := svc.Conversation(ctx, "bob", "alice")
	require.NoError(t, err)
	require.Len(t, forward, 2)
	assert.Equal(t, forward, backward)
}
