package dto

import "time"

type SignInDTO struct {
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required"`
}

type SignUpDTO struct {
	Username        string `json:"username" binding:"required" validate:"min=1,max=50"`
	Email           string `json:"email" binding:"required" validate:"email"`
	Mobile          string `json:"mobile" validate:"omitempty,max=30"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type SignOutDTO struct {
	ProviderToken string `json:"provider_token"`
}

// AuthDTO 登录注册结果；PendingConfirmation 时不含令牌
type AuthDTO struct {
	Token               string     `json:"token,omitempty"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
	ProviderToken       string     `json:"provider_token,omitempty"`
	PendingConfirmation bool       `json:"pending_confirmation"`
	Email               string     `json:"email,omitempty"`
	User                *UserDTO   `json:"user,omitempty"`
}
