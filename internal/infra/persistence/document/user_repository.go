// Package document implements the domain repositories over the single JSON
// document store. Each operation is one exclusive load-mutate-save cycle.
package document

import (
	"context"

	"workforce/internal/domain/entity"
	"workforce/internal/domain/repository"
	"workforce/internal/infra/docstore"
)

type userRepository struct {
	store *docstore.Store
}

// NewUserRepository creates a UserRepository backed by the document store.
func NewUserRepository(store *docstore.Store) repository.UserRepository {
	return &userRepository{store: store}
}

// Upsert creates the user on first sight and merges fields afterwards.
func (r *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	var stored *entity.User
	err := r.store.Update(func(doc *entity.Document) error {
		existing, ok := doc.Users[user.ID]
		if !ok {
			created := *user
			created.CreatedAt = nowUTC()
			doc.Users[user.ID] = &created
			stored = &created

			return nil
		}

		existing.Merge(user)
		stored = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// Find returns the user or nil if unknown. An unknown user is not an error
// here; the caller decides whether absence matters.
func (r *userRepository) Find(ctx context.Context, id string) (*entity.User, error) {
	var found *entity.User
	err := r.store.View(func(doc *entity.Document) error {
		found = doc.Users[id]

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}
