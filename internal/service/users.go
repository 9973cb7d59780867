package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gashorafarm/farmconnect/internal/access"
	"github.com/gashorafarm/farmconnect/internal/models"
	"github.com/gashorafarm/farmconnect/internal/repo"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	return users, nil
}

// UpdateRole changes another account's role. Admins cannot demote themselves, and only
// accounts registered with a farmer profile can become farmers.
func (s *UserService) UpdateRole(ctx context.Context, actor Actor, id uuid.UUID, role string) (*models.User, error) {
	r, err := access.ParseRole(role)
	if err != nil || !r.Authenticated() {
		return nil, invalid("unknown role %q", role)
	}
	if actor.UserID == id {
		return nil, ErrConflict
	}
	u, err := s.Repo.UpdateUserRole(ctx, id, string(r), r == access.RoleFarmer)
	if err != nil {
		return nil, storeErr("update role", err)
	}
	return u, nil
}

// DeleteUser removes the account. A farmer account takes its farmer profile and
// products with it.
// TODO: drop the removed products from the search index once Searcher can delete.
func (s *UserService) DeleteUser(ctx context.Context, actor Actor, id uuid.UUID) error {
	if actor.UserID == id {
		return ErrConflict
	}
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		return storeErr("delete user", err)
	}
	return nil
}
