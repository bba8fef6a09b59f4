package handler

import (
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/pkg/social"
	"Kajoogram/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	friendSvc service.FriendService
}

func NewFriendHandler(friendSvc service.FriendService) *FriendHandler {
	return &FriendHandler{friendSvc: friendSvc}
}

// GetLists 好友、收到的请求、发出的请求与推荐
func (s *FriendHandler) GetLists(c *gin.Context) {
	lists, err := s.friendSvc.GetLists(c.Request.Context(), c.GetUint64(middleware.UserIDKey))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, lists)
}

func (s *FriendHandler) GetUser(c *gin.Context) {
	peerID, ok := paramID(c, "user_id")
	if !ok {
		return
	}

	user, err := s.friendSvc.GetUser(c.Request.Context(), c.GetUint64(middleware.UserIDKey), peerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *FriendHandler) SendRequest(c *gin.Context) {
	s.transition(c, s.friendSvc.SendRequest)
}

func (s *FriendHandler) AcceptRequest(c *gin.Context) {
	s.transition(c, s.friendSvc.AcceptRequest)
}

func (s *FriendHandler) DeleteRequest(c *gin.Context) {
	s.transition(c, s.friendSvc.DeleteRequest)
}

func (s *FriendHandler) RemoveFriend(c *gin.Context) {
	s.transition(c, s.friendSvc.RemoveFriend)
}

func (s *FriendHandler) transition(c *gin.Context, fn func(ctx context.Context, ownerID, peerID uint64) (social.Status, error)) {
	peerID, ok := paramID(c, "user_id")
	if !ok {
		return
	}

	status, err := fn(c.Request.Context(), c.GetUint64(middleware.UserIDKey), peerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user_id": peerID, "friend_status": status})
}
