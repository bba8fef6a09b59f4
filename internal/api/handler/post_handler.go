package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/repository"
	"Kajoogram/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64(middleware.UserIDKey)

	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := paramID(c, "post_id")
	if !ok {
		return
	}

	userID := c.GetUint64(middleware.UserIDKey)
	if err := s.postSvc.DeletePost(c.Request.Context(), userID, middleware.IsAdmin(c), postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := paramID(c, "post_id")
	if !ok {
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

func (s *PostHandler) GetPostSelf(c *gin.Context) {
	posts, err := s.postSvc.GetUserPosts(c.Request.Context(), c.GetUint64(middleware.UserIDKey))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, posts)
}

func (s *PostHandler) GetPostByUserId(c *gin.Context) {
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}

	posts, err := s.postSvc.GetUserPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, posts)
}

// Act 对应 /posts/:post_id/{like,view,share,comment}
func (s *PostHandler) Act(counter repository.Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := paramID(c, "post_id")
		if !ok {
			return
		}

		counters, err := s.postSvc.Act(c.Request.Context(), postID, counter)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.Success(c, counters)
	}
}
