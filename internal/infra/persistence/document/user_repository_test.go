package document

import (
	"context"
	"testing"

	"workforce/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertCreatesThenMerges(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)

	created, err := repo.Upsert(context.Background(), &entity.User{
		ID:        "u1",
		FirstName: "Ada",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	// A later upsert merges non-empty fields and leaves the rest alone.
	merged, err := repo.Upsert(context.Background(), &entity.User{
		ID:    "u1",
		Phone: "+2348000000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", merged.FirstName)
	assert.Equal(t, "ada@example.com", merged.Email)
	assert.Equal(t, "+2348000000000", merged.Phone)
	assert.Equal(t, created.CreatedAt, merged.CreatedAt)
}

func TestFindUnknownUserIsNil(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)

	user, err := repo.Find(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}
