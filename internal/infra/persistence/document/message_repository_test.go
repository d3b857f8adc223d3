package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendCreatesConversationLazily(t *testing.T) {
	store := newTestStore(t)
	repo := NewMessageRepository(store)

	msg, err := repo.Append(context.Background(), "alice", "bob", "hello", "")
	require.NoError(t, err)
	assert.Contains(t, msg.ID, "msg_")
	assert.False(t, msg.Read)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestConversationIsSymmetric(t *testing.T) {
	store := newTestStore(t)
	repo := NewMessageRepository(store)

	_, err := repo.Append(context.Background(), "alice", "bob", "hello", "")
	require.NoError(t, err)
	_, err = repo.Append(context.Background(), "bob", "alice", "hi back", "order_1")
	require.NoError(t, err)

	forward, err := repo.Conversation(context.Background(), "alice", "bob")
	require.NoError(t, err)
	backward, err := repo.Conversation(context.Background(), "bob", "alice")
	require.NoError(t, err)

	require.Len(t, forward, 2)
	assert.Equal(t, forward, backward)
	assert.Equal(t, "hello", forward[0].Message)
	assert.Equal(t, "order_1", forward[1].OrderID)
}

func TestMissingConversationIsEmpty(t *testing.T) {
	store := newTestStore(t)
	repo := NewMessageRepository(store)

	messages, err := repo.Conversation(context.Background(), "alice", "stranger")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestBurstMessagesGetDistinctIDs(t *testing.T) {
	store := newTestStore(t)
	repo := NewMessageRepository(store)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		msg, err := repo.Append(context.Background(), "alice", "bob", "ping", "")
		require.NoError(t, err)
		assert.False(t, seen[msg.ID])
		seen[msg.ID] = true
	}
}
