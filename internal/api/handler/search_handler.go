package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchSvc service.SearchService
}

func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

// Search 登录用户的查询会写入搜索历史
func (s *SearchHandler) Search(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.searchSvc.Search(c.Request.Context(), c.GetUint64(middleware.UserIDKey), q.Q, q.Filters())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *SearchHandler) History(c *gin.Context) {
	history, err := s.searchSvc.History(c.Request.Context(), c.GetUint64(middleware.UserIDKey))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

func (s *SearchHandler) ClearHistory(c *gin.Context) {
	if err := s.searchSvc.ClearHistory(c.Request.Context(), c.GetUint64(middleware.UserIDKey)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
