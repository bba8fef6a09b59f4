package identity

import (
	"Kajoogram/internal/pkg/security"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCredentials struct {
	mu   sync.Mutex
	rows []*Credential
}

func (m *memCredentials) FindCredential(_ context.Context, email string) (*Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, ErrCredentialNotFound
}

func (m *memCredentials) FindCredentialByID(_ context.Context, id uint64) (*Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrCredentialNotFound
}

func (m *memCredentials) CreateCredential(_ context.Context, c *Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uint64(len(m.rows) + 1)
	m.rows = append(m.rows, c)
	return nil
}

func TestLocalProvider(t *testing.T) {
	ctx := context.Background()
	l := NewLocal(&memCredentials{}, security.NewTokenIssuer("k", time.Hour))

	res, err := l.SignUp(ctx, " Anya@Example.com ", "secret1", Profile{Username: "anya"})
	require.NoError(t, err)
	require.NotNil(t, res.Session)
	assert.Equal(t, "anya@example.com", res.Session.Email)
	assert.Equal(t, "local:1", res.Session.ExternalID)

	_, err = l.SignUp(ctx, "anya@example.com", "secret1", Profile{})
	ae, ok := AsAuthError(err)
	require.True(t, ok)
	assert.Equal(t, "email_exists", ae.Code)

	_, err = l.SignUp(ctx, "b@example.com", "123", Profile{})
	_, ok = AsAuthError(err)
	assert.True(t, ok)

	sess, err := l.SignIn(ctx, "ANYA@example.com", "secret1")
	require.NoError(t, err)
	got, err := l.GetUser(ctx, sess.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "anya", got.DisplayName)

	_, err = l.SignIn(ctx, "anya@example.com", "wrong")
	_, ok = AsAuthError(err)
	assert.True(t, ok)
	_, err = l.SignIn(ctx, "ghost@example.com", "secret1")
	_, ok = AsAuthError(err)
	assert.True(t, ok)

	_, err = l.GetUser(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestHubPublishesAndUnsubscribes(t *testing.T) {
	ctx := context.Background()
	hub := NewHub(NewLocal(&memCredentials{}, security.NewTokenIssuer("k", time.Hour)), time.Second)

	var events []EventKind
	unsubscribe := hub.OnSessionChange(func(_ context.Context, ev Event) {
		events = append(events, ev.Kind)
	})

	res, err := hub.SignUp(ctx, "a@b.c", "secret1", Profile{})
	require.NoError(t, err)
	_, err = hub.SignIn(ctx, "a@b.c", "wrong")
	assert.Error(t, err)
	require.NoError(t, hub.SignOut(ctx, res.Session))

	sess, err := hub.GetSession(ctx, res.Session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", sess.Email)
	_, err = hub.GetSession(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	unsubscribe()
	unsubscribe()
	_, err = hub.SignIn(ctx, "a@b.c", "secret1")
	require.NoError(t, err)

	assert.Equal(t, []EventKind{EventSignedIn, EventSignedOut}, events)
	assert.Equal(t, "local", hub.Provider())
}
