package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// Overview 四项指标合计
func (s *AnalyticsHandler) Overview(c *gin.Context) {
	var q dto.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.analyticsSvc.Overview(c.Request.Context(), c.GetUint64(middleware.UserIDKey), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// Report 单项指标的日序列、合计与排行
func (s *AnalyticsHandler) Report(c *gin.Context) {
	var q dto.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.analyticsSvc.Report(c.Request.Context(), c.GetUint64(middleware.UserIDKey), c.Param("metric"), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *AnalyticsHandler) Posts(c *gin.Context) {
	var q dto.AnalyticsPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.analyticsSvc.Posts(c.Request.Context(), c.GetUint64(middleware.UserIDKey), c.Param("metric"), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
