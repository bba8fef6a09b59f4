package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/pkg/social"
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

type fakeFriendService struct {
	service.FriendService
	owner, peer uint64
}

func (f *fakeFriendService) SendRequest(_ context.Context, owner, peer uint64) (social.Status, error) {
	f.owner, f.peer = owner, peer
	if owner == peer {
		return "", service.ErrFriendSelf
	}
	if peer == 9 {
		return "", service.ErrFriendExist
	}
	return social.StatusRequestSent, nil
}

func (f *fakeFriendService) GetLists(context.Context, uint64) (*dto.FriendListsDTO, error) {
	return &dto.FriendListsDTO{Friends: []*dto.FriendUserDTO{{ID: 2, Username: "bob", FriendStatus: string(social.StatusFriend)}}}, nil
}

func friendRouter(svc service.FriendService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFriendHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uint64(1))
		c.Next()
	})
	r.GET("/friends", h.GetLists)
	r.POST("/friends/:user_id/request", h.SendRequest)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string) dto.Response {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var res dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestFriendHandler_SendRequest(t *testing.T) {
	svc := &fakeFriendService{}
	r := friendRouter(svc)

	res := do(t, r, http.MethodPost, "/friends/5/request")
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, uint64(1), svc.owner)
	assert.Equal(t, uint64(5), svc.peer)
	assert.Equal(t, map[string]interface{}{"user_id": float64(5), "friend_status": "request_sent"}, res.Data)

	res = do(t, r, http.MethodPost, "/friends/9/request")
	assert.Equal(t, 409, res.Code)

	res = do(t, r, http.MethodPost, "/friends/1/request")
	assert.Equal(t, 400, res.Code)

	res = do(t, r, http.MethodPost, "/friends/abc/request")
	assert.Equal(t, 400, res.Code)
}

func TestFriendHandler_GetLists(t *testing.T) {
	res := do(t, friendRouter(&fakeFriendService{}), http.MethodGet, "/friends")
	require.Equal(t, 200, res.Code)
	data := res.Data.(map[string]interface{})
	friends := data["friends"].([]interface{})
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].(map[string]interface{})["username"])
}
