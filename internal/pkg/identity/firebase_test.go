package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFirebaseServer(t *testing.T) *Firebase {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/accounts:signInWithPassword":
			if body["password"] != "secret1" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"code":400,"message":"INVALID_LOGIN_CREDENTIALS"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"localId":"fb-1","email":"a@b.c","displayName":"Anya","idToken":"id-1","refreshToken":"r","expiresIn":"3600"}`))
		case "/v1/accounts:signUp":
			if body["password"] == "123" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"code":400,"message":"WEAK_PASSWORD : Password should be at least 6 characters"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"localId":"fb-2","email":"n@b.c","idToken":"id-2","expiresIn":"3600"}`))
		case "/v1/accounts:lookup":
			if body["idToken"] != "id-1" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"code":400,"message":"INVALID_ID_TOKEN"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"users":[{"localId":"fb-1","email":"a@b.c","photoUrl":"p.png"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return NewFirebase(srv.URL, "k", time.Second)
}

func TestFirebaseSignIn(t *testing.T) {
	f := newFirebaseServer(t)

	sess, err := f.SignIn(context.Background(), "a@b.c", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "fb-1", sess.ExternalID)
	assert.Equal(t, "Anya", sess.DisplayName)
	assert.Equal(t, "id-1", sess.AccessToken)

	_, err = f.SignIn(context.Background(), "a@b.c", "wrong")
	ae, ok := AsAuthError(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_LOGIN_CREDENTIALS", ae.Code)
	assert.Equal(t, "Invalid email or password.", ae.Message)
}

func TestFirebaseSignUp(t *testing.T) {
	f := newFirebaseServer(t)

	res, err := f.SignUp(context.Background(), "n@b.c", "secret1", Profile{Username: "neo", Mobile: "555"})
	require.NoError(t, err)
	require.NotNil(t, res.Session)
	assert.False(t, res.PendingConfirmation)
	assert.Equal(t, "neo", res.Session.DisplayName)
	assert.Equal(t, "555", res.Session.Mobile)

	_, err = f.SignUp(context.Background(), "n@b.c", "123", Profile{})
	ae, ok := AsAuthError(err)
	require.True(t, ok)
	assert.Equal(t, "WEAK_PASSWORD", ae.Code)
	assert.Equal(t, "Password should be at least 6 characters", ae.Message)
}

func TestFirebaseGetUser(t *testing.T) {
	f := newFirebaseServer(t)

	sess, err := f.GetUser(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "p.png", sess.AvatarURL)

	_, err = f.GetUser(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.NoError(t, f.SignOut(context.Background(), "id-1"))
}
