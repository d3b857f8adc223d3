// Package repository defines the persistence interfaces of the domain.
// Every operation is one whole-document load-mutate-save cycle; the
// implementation serializes those cycles so concurrent mutations can never
// lose a write.
package repository

import (
	"context"

	"workforce/internal/domain/entity"
)

// UserRepository manages the User entity map.
type UserRepository interface {
	// Upsert creates the user on first sight (stamping the creation
	// timestamp) and merges non-empty fields on subsequent calls.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)

	// Find returns the user or nil if unknown.
	Find(ctx context.Context, id string) (*entity.User, error)
}
