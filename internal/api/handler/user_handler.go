package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc      service.UserService
	userRolesSvc service.UserRolesService
}

func NewUserHandler(userSvc service.UserService, userRolesSvc service.UserRolesService) *UserHandler {
	return &UserHandler{userSvc: userSvc, userRolesSvc: userRolesSvc}
}

func (s *UserHandler) GetMe(c *gin.Context) {
	user, err := s.userSvc.GetUserById(c.Request.Context(), c.GetUint64(middleware.UserIDKey))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UserUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.UpdateProfile(c.Request.Context(), c.GetUint64(middleware.UserIDKey), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// GetAllRoles 管理员查看全部角色
func (s *UserHandler) GetAllRoles(c *gin.Context) {
	roles, err := s.userRolesSvc.GetRoles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, roles)
}

func (s *UserHandler) GrantRole(c *gin.Context) {
	var req dto.GrantRoleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userRolesSvc.GrantRole(c.Request.Context(), req.UserID, req.Role); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) RevokeRole(c *gin.Context) {
	var req dto.GrantRoleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userRolesSvc.RevokeRole(c.Request.Context(), req.UserID, req.Role); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
