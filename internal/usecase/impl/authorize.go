// Package impl implements the usecase interfaces over the domain
// repositories.
package impl

import (
	"context"

	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/domain/repository"

	"github.com/pkg/errors"
)

// authorizer answers the isAdmin/isSuperAdmin predicates. The effective
// admin set is the configured super admin plus every id holding a grant.
type authorizer struct {
	superAdminID string
	workerRepo   repository.WorkerRepository
}

func (a *authorizer) isSuperAdmin(id string) bool {
	return id != "" && id == a.superAdminID
}

func (a *authorizer) isAdmin(ctx context.Context, id string) (bool, error) {
	if a.isSuperAdmin(id) {
		return true, nil
	}

	granted, err := a.workerRepo.HasGrant(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to check admin grant")
	}

	return granted, nil
}

func (a *authorizer) requireAdmin(ctx context.Context, actor string) error {
	admin, err := a.isAdmin(ctx, actor)
	if err != nil {
		return err
	}
	if !admin {
		return domainerrors.ErrAdminOnly
	}

	return nil
}

func (a *authorizer) requireSuperAdmin(actor string) error {
	if !a.isSuperAdmin(actor) {
		return domainerrors.ErrSuperAdminOnly
	}

	return nil
}
