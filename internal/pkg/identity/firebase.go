package identity

import (
	"Kajoogram/internal/pkg/logger"
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	firebaseName     = "firebase"
	firebaseEndpoint = "https://identitytoolkit.googleapis.com"
)

// Firebase Identity Toolkit REST 适配器
type Firebase struct {
	client *resty.Client
}

func NewFirebase(endpoint, apiKey string, timeout time.Duration) *Firebase {
	if endpoint == "" {
		endpoint = firebaseEndpoint
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(endpoint, "/")+"/v1").
		SetTimeout(timeout).
		SetTransport(logger.NewHTTPTransport(firebaseName)).
		SetQueryParam("key", apiKey).
		SetHeader("Content-Type", "application/json")
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal
	return &Firebase{client: client}
}

func (f *Firebase) Name() string { return firebaseName }

type firebaseAuthResp struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoUrl"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type firebaseLookupResp struct {
	Users []struct {
		LocalID     string `json:"localId"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoUrl"`
		PhoneNumber string `json:"phoneNumber"`
	} `json:"users"`
}

type firebaseError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var firebaseMessages = map[string]string{
	"EMAIL_NOT_FOUND":             "No account found with this email.",
	"INVALID_PASSWORD":            "Incorrect password.",
	"INVALID_LOGIN_CREDENTIALS":   "Invalid email or password.",
	"USER_DISABLED":               "This account has been disabled.",
	"EMAIL_EXISTS":                "An account with this email already exists.",
	"OPERATION_NOT_ALLOWED":       "Password sign-in is disabled for this project.",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many attempts. Please try again later.",
	"INVALID_ID_TOKEN":            "Your session has expired. Please sign in again.",
	"INVALID_EMAIL":               "The email address is badly formatted.",
}

func (e *firebaseError) toAuthError(status int) *AuthError {
	// 例如 "WEAK_PASSWORD : Password should be at least 6 characters"
	code, detail, _ := strings.Cut(e.Error.Message, " : ")
	code = strings.TrimSpace(code)
	msg, ok := firebaseMessages[code]
	if !ok {
		msg = firstNonEmpty(strings.TrimSpace(detail), e.Error.Message)
	}
	return authError(firebaseName, status, code, msg)
}

func (f *Firebase) post(ctx context.Context, path string, body any, out any) error {
	var e firebaseError
	resp, err := f.client.R().SetContext(ctx).
		SetBody(body).
		SetResult(out).SetError(&e).
		Post(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return e.toAuthError(resp.StatusCode())
	}
	return nil
}

func (f *Firebase) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var out firebaseAuthResp
	err := f.post(ctx, "/accounts:signInWithPassword", map[string]any{
		"email": email, "password": password, "returnSecureToken": true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.toSession(), nil
}

// SignUp Identity Toolkit 注册即登录，不需要邮箱确认
func (f *Firebase) SignUp(ctx context.Context, email, password string, profile Profile) (*SignUpResult, error) {
	var out firebaseAuthResp
	err := f.post(ctx, "/accounts:signUp", map[string]any{
		"email": email, "password": password, "displayName": profile.Username, "returnSecureToken": true,
	}, &out)
	if err != nil {
		return nil, err
	}
	sess := out.toSession()
	if sess.DisplayName == "" {
		sess.DisplayName = profile.Username
	}
	sess.Mobile = profile.Mobile
	return &SignUpResult{Session: sess, Email: email}, nil
}

// SignOut ID token 无法在客户端吊销，由本地黑名单负责
func (f *Firebase) SignOut(ctx context.Context, accessToken string) error {
	return nil
}

func (f *Firebase) GetUser(ctx context.Context, accessToken string) (*Session, error) {
	var out firebaseLookupResp
	err := f.post(ctx, "/accounts:lookup", map[string]string{"idToken": accessToken}, &out)
	if ae, ok := AsAuthError(err); ok && (ae.Status == http.StatusBadRequest || ae.Status == http.StatusUnauthorized) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	if len(out.Users) == 0 {
		return nil, ErrUnauthenticated
	}
	u := out.Users[0]
	return &Session{
		ExternalID:  u.LocalID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.PhotoURL,
		Mobile:      u.PhoneNumber,
		AccessToken: accessToken,
	}, nil
}

func (r *firebaseAuthResp) toSession() *Session {
	sess := &Session{
		ExternalID:   r.LocalID,
		Email:        r.Email,
		DisplayName:  r.DisplayName,
		AvatarURL:    r.PhotoURL,
		AccessToken:  r.IDToken,
		RefreshToken: r.RefreshToken,
	}
	if secs, err := strconv.Atoi(r.ExpiresIn); err == nil && secs > 0 {
		sess.ExpiresAt = time.Now().Add(time.Duration(secs) * time.Second)
	}
	return sess
}
