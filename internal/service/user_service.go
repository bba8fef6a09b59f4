package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/util"
	"Kajoogram/internal/repository"
	"context"
	"strings"

	"github.com/jinzhu/copier"
)

type UserService interface {
	GetUserById(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id uint64, req *dto.UserUpdateDTO) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo  repository.UserRepo
	rolesRepo repository.UserRolesRepo
}

func NewUserService(userRepo repository.UserRepo, rolesRepo repository.UserRolesRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo, rolesRepo: rolesRepo}
}

func (s *UserServiceImpl) GetUserById(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.toDTO(ctx, user)
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, req *dto.UserUpdateDTO) (*dto.UserDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrParamInvalid
	}
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if req.Username != nil {
		name := strings.TrimSpace(*req.Username)
		if name == "" {
			return nil, ErrParamInvalid
		}
		req.Username = &name
	}
	if err = copier.CopyWithOption(user, req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return s.toDTO(ctx, user)
}

func (s *UserServiceImpl) toDTO(ctx context.Context, user *model.User) (*dto.UserDTO, error) {
	out := toUserDTO(user)
	roles, err := s.rolesRepo.GetUserRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		out.Roles = append(out.Roles, r.Name)
	}
	return out, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	out := &dto.UserDTO{}
	_ = copier.Copy(out, user)
	return out
}
