package identity

import (
	"Kajoogram/internal/pkg/security"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const localName = "local"

// Credential 本地账号
type Credential struct {
	ID           uint64
	Email        string
	PasswordHash string
	Username     string
	Mobile       string
	AvatarURL    string
}

// CredentialStore 本地账号存储，由用户仓库实现
type CredentialStore interface {
	FindCredential(ctx context.Context, email string) (*Credential, error)
	FindCredentialByID(ctx context.Context, id uint64) (*Credential, error)
	CreateCredential(ctx context.Context, c *Credential) error
}

var ErrCredentialNotFound = errors.New("credential not found")

// Local 使用本地 users 表与 bcrypt 的提供方
type Local struct {
	store  CredentialStore
	tokens *security.TokenIssuer
}

func NewLocal(store CredentialStore, tokens *security.TokenIssuer) *Local {
	return &Local{store: store, tokens: tokens}
}

func (l *Local) Name() string { return localName }

func (l *Local) SignIn(ctx context.Context, email, password string) (*Session, error) {
	c, err := l.store.FindCredential(ctx, normalizeEmail(email))
	if errors.Is(err, ErrCredentialNotFound) {
		return nil, authError(localName, http.StatusBadRequest, "invalid_credentials", "Invalid email or password.")
	}
	if err != nil {
		return nil, err
	}
	if err = security.CheckPasswordHash(password, c.PasswordHash); err != nil {
		return nil, authError(localName, http.StatusBadRequest, "invalid_credentials", "Invalid email or password.")
	}
	return l.session(c)
}

func (l *Local) SignUp(ctx context.Context, email, password string, profile Profile) (*SignUpResult, error) {
	email = normalizeEmail(email)
	if len(password) < 6 {
		return nil, authError(localName, http.StatusBadRequest, "weak_password", "Password should be at least 6 characters.")
	}
	_, err := l.store.FindCredential(ctx, email)
	if err == nil {
		return nil, authError(localName, http.StatusConflict, "email_exists", "An account with this email already exists.")
	}
	if !errors.Is(err, ErrCredentialNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	c := &Credential{
		Email:        email,
		PasswordHash: hash,
		Username:     profile.Username,
		Mobile:       profile.Mobile,
		AvatarURL:    profile.AvatarURL,
	}
	if err = l.store.CreateCredential(ctx, c); err != nil {
		return nil, err
	}
	sess, err := l.session(c)
	if err != nil {
		return nil, err
	}
	return &SignUpResult{Session: sess, Email: email}, nil
}

// SignOut 本地令牌由服务层黑名单吊销
func (l *Local) SignOut(ctx context.Context, accessToken string) error {
	return nil
}

func (l *Local) GetUser(ctx context.Context, accessToken string) (*Session, error) {
	claims, err := l.tokens.Validate(accessToken)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	c, err := l.store.FindCredentialByID(ctx, claims.UserID)
	if errors.Is(err, ErrCredentialNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	sess := credentialSession(c)
	sess.AccessToken = accessToken
	return sess, nil
}

func (l *Local) session(c *Credential) (*Session, error) {
	token, err := l.tokens.Generate(c.ID, c.Email, nil)
	if err != nil {
		return nil, err
	}
	sess := credentialSession(c)
	sess.AccessToken = token
	sess.ExpiresAt = time.Now().Add(l.tokens.TTL())
	return sess, nil
}

func credentialSession(c *Credential) *Session {
	return &Session{
		ExternalID:  localName + ":" + strconv.FormatUint(c.ID, 10),
		Email:       c.Email,
		DisplayName: c.Username,
		AvatarURL:   c.AvatarURL,
		Mobile:      c.Mobile,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
