package service

import (
	"Kajoogram/internal/model"
	"Kajoogram/internal/repository"
	"context"
)

type UserRolesService interface {
	GetRoles(ctx context.Context) ([]*model.Role, error)
	GetUserRoleNames(ctx context.Context, userId uint64) ([]string, error)
	GrantRole(ctx context.Context, userId uint64, roleName string) error
	RevokeRole(ctx context.Context, userId uint64, roleName string) error
}

type UserRolesServiceImpl struct {
	userRolesRepo repository.UserRolesRepo
	userRepo      repository.UserRepo
}

func NewUserRolesService(userRolesRepo repository.UserRolesRepo, userRepo repository.UserRepo) UserRolesService {
	return &UserRolesServiceImpl{userRolesRepo: userRolesRepo, userRepo: userRepo}
}

func (s *UserRolesServiceImpl) GetRoles(ctx context.Context) ([]*model.Role, error) {
	return s.userRolesRepo.GetRoles(ctx)
}

func (s *UserRolesServiceImpl) GetUserRoleNames(ctx context.Context, userId uint64) ([]string, error) {
	roles, err := s.userRolesRepo.GetUserRoles(ctx, userId)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *UserRolesServiceImpl) GrantRole(ctx context.Context, userId uint64, roleName string) error {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	role, err := s.userRolesRepo.GetRoleByName(ctx, roleName)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}
	hasRole, err := s.userRolesRepo.GetUserHasRole(ctx, userId, role.ID)
	if err != nil {
		return err
	}
	if hasRole {
		return ErrUserHasRole
	}
	return s.userRolesRepo.AddRoleToUser(ctx, userId, role.ID)
}

func (s *UserRolesServiceImpl) RevokeRole(ctx context.Context, userId uint64, roleName string) error {
	role, err := s.userRolesRepo.GetRoleByName(ctx, roleName)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}
	return s.userRolesRepo.DeleteRoleFromUser(ctx, userId, role.ID)
}
