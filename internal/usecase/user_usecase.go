// Package usecase defines the application-facing interfaces of the business
// logic layer.
package usecase

import (
	"context"

	"workforce/internal/domain/entity"
)

// UserInput carries the profile fields of an upsert.
type UserInput struct {
	ID        string `json:"id" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UserSnapshot is the profile plus authorization view served to the
// transport layer. The notifier renders its own text from these fields.
type UserSnapshot struct {
	User           *entity.User   `json:"user"`
	Worker         *entity.Worker `json:"worker,omitempty"`
	IsAdmin        bool           `json:"isAdmin"`
	IsSuperAdmin   bool           `json:"isSuperAdmin"`
	WelcomeMessage string         `json:"welcomeMessage"`
}

// UserUsecase defines the interface for user profile management use cases
type UserUsecase interface {
	// CreateOrUpdateUser upserts the profile: first sight creates it,
	// later calls merge non-empty fields
	CreateOrUpdateUser(ctx context.Context, input UserInput) (*entity.User, error)

	// GetUserSnapshot returns the profile and authorization snapshot
	GetUserSnapshot(ctx context.Context, id string) (*UserSnapshot, error)
}
