package identity

import (
	"Kajoogram/internal/pkg/logger"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const supabaseName = "supabase"

// Supabase GoTrue REST 适配器
type Supabase struct {
	client *resty.Client
}

func NewSupabase(baseURL, anonKey string, timeout time.Duration) *Supabase {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/auth/v1").
		SetTimeout(timeout).
		SetTransport(logger.NewHTTPTransport(supabaseName)).
		SetHeader("apikey", anonKey).
		SetHeader("Content-Type", "application/json")
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal
	return &Supabase{client: client}
}

func (s *Supabase) Name() string { return supabaseName }

type gotrueUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type gotrueSession struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	User         *gotrueUser `json:"user"`
}

// 注册且需要邮箱确认时，GoTrue 直接返回 user 对象
type gotrueSignUp struct {
	gotrueSession
	gotrueUser
}

type gotrueError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
	Code        any    `json:"code"`
	ErrorCode   string `json:"error_code"`
	Msg         string `json:"msg"`
	Message     string `json:"message"`
}

func (e *gotrueError) toAuthError(status int) *AuthError {
	msg := firstNonEmpty(e.Description, e.Msg, e.Message, e.Error)
	code := firstNonEmpty(e.ErrorCode, e.Error)
	return authError(supabaseName, status, code, msg)
}

func (s *Supabase) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var out gotrueSession
	var e gotrueError
	resp, err := s.client.R().SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).SetError(&e).
		Post("/token")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, e.toAuthError(resp.StatusCode())
	}
	return out.toSession(), nil
}

func (s *Supabase) SignUp(ctx context.Context, email, password string, profile Profile) (*SignUpResult, error) {
	var out gotrueSignUp
	var e gotrueError
	resp, err := s.client.R().SetContext(ctx).
		SetBody(map[string]any{
			"email":    email,
			"password": password,
			"data": map[string]string{
				"username": profile.Username,
				"mobile":   profile.Mobile,
			},
		}).
		SetResult(&out).SetError(&e).
		Post("/signup")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, e.toAuthError(resp.StatusCode())
	}
	if out.AccessToken == "" {
		return &SignUpResult{PendingConfirmation: true, Email: firstNonEmpty(out.gotrueUser.Email, email)}, nil
	}
	return &SignUpResult{Session: out.gotrueSession.toSession(), Email: email}, nil
}

func (s *Supabase) SignOut(ctx context.Context, accessToken string) error {
	var e gotrueError
	resp, err := s.client.R().SetContext(ctx).
		SetAuthToken(accessToken).
		SetError(&e).
		Post("/logout")
	if err != nil {
		return err
	}
	// 令牌已失效视为已登出
	if resp.IsError() && resp.StatusCode() != http.StatusUnauthorized {
		return e.toAuthError(resp.StatusCode())
	}
	return nil
}

func (s *Supabase) GetUser(ctx context.Context, accessToken string) (*Session, error) {
	var out gotrueUser
	var e gotrueError
	resp, err := s.client.R().SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&out).SetError(&e).
		Get("/user")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, ErrUnauthenticated
	}
	if resp.IsError() {
		return nil, e.toAuthError(resp.StatusCode())
	}
	sess := out.toSession()
	sess.AccessToken = accessToken
	return sess, nil
}

func (s *gotrueSession) toSession() *Session {
	sess := &Session{AccessToken: s.AccessToken, RefreshToken: s.RefreshToken}
	if s.ExpiresIn > 0 {
		sess.ExpiresAt = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second)
	}
	if s.User != nil {
		u := s.User.toSession()
		sess.ExternalID, sess.Email, sess.DisplayName, sess.AvatarURL, sess.Mobile = u.ExternalID, u.Email, u.DisplayName, u.AvatarURL, u.Mobile
	}
	return sess
}

func (u *gotrueUser) toSession() *Session {
	meta := func(k string) string {
		if v, ok := u.UserMetadata[k].(string); ok {
			return v
		}
		return ""
	}
	return &Session{
		ExternalID:  u.ID,
		Email:       u.Email,
		DisplayName: firstNonEmpty(meta("username"), meta("full_name"), meta("name")),
		AvatarURL:   firstNonEmpty(meta("avatar_url"), meta("picture")),
		Mobile:      firstNonEmpty(meta("mobile"), u.Phone),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
