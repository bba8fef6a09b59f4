package middleware

import (
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/pkg/security"
	"Kajoogram/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator map[string]*security.UserClaims

func (s stubValidator) ValidateToken(_ context.Context, token string) (*security.UserClaims, error) {
	if c, ok := s[token]; ok {
		return c, nil
	}
	return nil, service.ErrTokenInvalid
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(v TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())
	whoami := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 200, "data": gin.H{"user_id": c.GetUint64(UserIDKey), "admin": IsAdmin(c)}})
	}
	r.GET("/private", AuthMiddleware(v), whoami)
	r.GET("/optional", AuthOptionalMiddleware(v), whoami)
	r.GET("/admin", AuthMiddleware(v), CheckRoles(consts.RoleAdmin), whoami)
	return r
}

func call(t *testing.T, r *gin.Engine, path, token string) (envelope, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env, w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(stubValidator{
		"user":  {UserID: 3, Roles: []string{consts.RoleUser}},
		"admin": {UserID: 1, Roles: []string{consts.RoleUser, consts.RoleAdmin}},
	})

	env, w := call(t, r, "/private", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 401, env.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	env, _ = call(t, r, "/private", "revoked")
	assert.Equal(t, 401, env.Code)

	env, _ = call(t, r, "/private", "user")
	assert.Equal(t, 200, env.Code)
	assert.JSONEq(t, `{"user_id":3,"admin":false}`, string(env.Data))
}

func TestAuthOptionalMiddleware(t *testing.T) {
	r := newRouter(stubValidator{"user": {UserID: 3}})

	env, _ := call(t, r, "/optional", "")
	assert.JSONEq(t, `{"user_id":0,"admin":false}`, string(env.Data))

	env, _ = call(t, r, "/optional", "garbage")
	assert.Equal(t, 200, env.Code)
	assert.JSONEq(t, `{"user_id":0,"admin":false}`, string(env.Data))

	env, _ = call(t, r, "/optional", "user")
	assert.JSONEq(t, `{"user_id":3,"admin":false}`, string(env.Data))
}

func TestCheckRoles(t *testing.T) {
	r := newRouter(stubValidator{
		"user":  {UserID: 3, Roles: []string{consts.RoleUser}},
		"admin": {UserID: 1, Roles: []string{consts.RoleAdmin}},
	})

	env, _ := call(t, r, "/admin", "user")
	assert.Equal(t, 403, env.Code)

	env, _ = call(t, r, "/admin", "admin")
	assert.Equal(t, 200, env.Code)
	assert.JSONEq(t, `{"user_id":1,"admin":true}`, string(env.Data))
}

func TestTraceMiddlewareEchoesHeader(t *testing.T) {
	r := newRouter(stubValidator{})
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get("X-Trace-ID"))
}
