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

func newSupabaseServer(t *testing.T, handler http.HandlerFunc) *Supabase {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSupabase(srv.URL, "anon", time.Second)
}

func TestSupabaseSignIn(t *testing.T) {
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		if body["password"] != "secret1" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600,
			"user":{"id":"u-1","email":"a@b.c","user_metadata":{"username":"anya","mobile":"123"}}}`))
	})

	sess, err := s.SignIn(context.Background(), "a@b.c", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", sess.ExternalID)
	assert.Equal(t, "anya", sess.DisplayName)
	assert.Equal(t, "123", sess.Mobile)
	assert.Equal(t, "at", sess.AccessToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)

	_, err = s.SignIn(context.Background(), "a@b.c", "nope")
	ae, ok := AsAuthError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid login credentials", ae.Error())
	assert.Equal(t, http.StatusBadRequest, ae.Status)
}

func TestSupabaseSignUpPendingConfirmation(t *testing.T) {
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		var body struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "anya", body.Data["username"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-9","email":"new@b.c","confirmation_sent_at":"2024-01-01T00:00:00Z"}`))
	})

	res, err := s.SignUp(context.Background(), "new@b.c", "secret1", Profile{Username: "anya"})
	require.NoError(t, err)
	assert.True(t, res.PendingConfirmation)
	assert.Nil(t, res.Session)
	assert.Equal(t, "new@b.c", res.Email)
}

func TestSupabaseSignUpWithSession(t *testing.T) {
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","expires_in":60,"user":{"id":"u-2","email":"x@y.z"}}`))
	})
	res, err := s.SignUp(context.Background(), "x@y.z", "secret1", Profile{})
	require.NoError(t, err)
	assert.False(t, res.PendingConfirmation)
	require.NotNil(t, res.Session)
	assert.Equal(t, "u-2", res.Session.ExternalID)
}

func TestSupabaseGetUserAndSignOut(t *testing.T) {
	s := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
			return
		}
		switch r.URL.Path {
		case "/auth/v1/user":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u-1","email":"a@b.c"}`))
		case "/auth/v1/logout":
			w.WriteHeader(http.StatusNoContent)
		}
	})

	sess, err := s.GetUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", sess.Email)
	assert.Equal(t, "good", sess.AccessToken)

	_, err = s.GetUser(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.NoError(t, s.SignOut(context.Background(), "good"))
	assert.NoError(t, s.SignOut(context.Background(), "bad"))
}
