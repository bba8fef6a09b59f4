package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc  service.FeedService
	topicSvc service.TopicService
}

func NewFeedHandler(feedSvc service.FeedService, topicSvc service.TopicService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc, topicSvc: topicSvc}
}

// Discover 发现页；page > 1 由客户端追加到已有列表
func (s *FeedHandler) Discover(c *gin.Context) {
	var q dto.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}
	page, err := s.feedSvc.Discover(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *FeedHandler) DiscoverTopics(c *gin.Context) {
	response.Success(c, dto.TopicsDTO{Topics: s.topicSvc.DiscoverTopics(c.Request.Context())})
}

func (s *FeedHandler) VideoTopics(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	response.Success(c, dto.TopicsDTO{Topics: s.topicSvc.VideoTopics(c.Request.Context(), title)})
}
