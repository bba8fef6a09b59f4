package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
	userSvc service.UserService
}

func NewAuthHandler(authSvc service.AuthService, userSvc service.UserService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, userSvc: userSvc}
}

func (s *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.authSvc.SignIn(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// SignUp 需要邮箱确认时返回 pending_confirmation，不签发令牌
func (s *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.authSvc.SignUp(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *AuthHandler) SignOut(c *gin.Context) {
	var req dto.SignOutDTO
	// body 可以为空
	_ = c.ShouldBindJSON(&req)

	if err := s.authSvc.SignOut(c.Request.Context(), c.GetString(middleware.TokenKey), req.ProviderToken); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Session 当前登录用户；未登录时 data 为 null
func (s *AuthHandler) Session(c *gin.Context) {
	userID := c.GetUint64(middleware.UserIDKey)
	if userID == 0 {
		response.Success(c, nil)
		return
	}

	user, err := s.userSvc.GetUserById(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"provider": s.authSvc.ProviderName(),
		"user":     user,
	})
}
