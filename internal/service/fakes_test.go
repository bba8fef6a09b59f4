package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/pkg/identity"
	"context"
	"mime/multipart"
	"sync"
	"time"
)

type memKV struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	hashes map[string]map[string]string
}

func newMemKV() *memKV {
	return &memKV{
		values: map[string]string{},
		ttls:   map[string]time.Duration{},
		hashes: map[string]map[string]string{},
	}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memKV) SetWithExpiration(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memKV) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok, nil
}

func (m *memKV) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

func (m *memKV) HSet(_ context.Context, key, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hashes[key] == nil {
		m.hashes[key] = map[string]string{}
	}
	m.hashes[key][field] = value
	return nil
}

func (m *memKV) HGetAll(_ context.Context, key string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]string{}
	for k, v := range m.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (m *memKV) HDel(_ context.Context, key string, fields ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range fields {
		delete(m.hashes[key], f)
	}
	return nil
}

// nopMedia 只记录被引用的 URL
type nopMedia struct {
	claimed []string
}

func (n *nopMedia) Upload(context.Context, *multipart.FileHeader) (*dto.MediaDTO, error) {
	return nil, ErrFileNotSupported
}

func (n *nopMedia) Claim(_ context.Context, urls ...string) {
	n.claimed = append(n.claimed, urls...)
}

func (n *nopMedia) CleanupExpired(context.Context) (int, error) { return 0, nil }

type fakeProvider struct {
	session  *identity.Session
	pending  bool
	err      error
	signOuts []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) SignIn(context.Context, string, string) (*identity.Session, error) {
	return f.session, f.err
}

func (f *fakeProvider) SignUp(_ context.Context, email, _ string, _ identity.Profile) (*identity.SignUpResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.pending {
		return &identity.SignUpResult{PendingConfirmation: true, Email: email}, nil
	}
	return &identity.SignUpResult{Session: f.session, Email: email}, nil
}

func (f *fakeProvider) SignOut(_ context.Context, token string) error {
	f.signOuts = append(f.signOuts, token)
	return nil
}

func (f *fakeProvider) GetUser(context.Context, string) (*identity.Session, error) {
	if f.session == nil {
		return nil, identity.ErrUnauthenticated
	}
	return f.session, nil
}
