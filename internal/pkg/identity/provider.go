package identity

import (
	"context"
	"errors"
	"time"
)

// Provider 身份提供方端口
type Provider interface {
	Name() string
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string, profile Profile) (*SignUpResult, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*Session, error)
}

// Session 提供方会话
type Session struct {
	ExternalID   string    `json:"external_id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Mobile       string    `json:"mobile,omitempty"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
}

// Profile 注册时附带的资料
type Profile struct {
	Username  string `json:"username,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// SignUpResult 注册结果；需要邮箱确认时 Session 为空
type SignUpResult struct {
	Session             *Session `json:"session,omitempty"`
	PendingConfirmation bool     `json:"pending_confirmation"`
	Email               string   `json:"email"`
}

// AuthError 提供方返回的错误，Message 直接展示给用户
type AuthError struct {
	Provider string
	Code     string
	Message  string
	Status   int
}

func (e *AuthError) Error() string {
	return e.Message
}

var ErrUnauthenticated = errors.New("not signed in")

// AsAuthError 取出 AuthError
func AsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func authError(provider string, status int, code, message string) *AuthError {
	if message == "" {
		message = "Authentication failed. Please try again."
	}
	return &AuthError{Provider: provider, Code: code, Message: message, Status: status}
}
