package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc}
}

func (s *ContentHandler) ListPages(c *gin.Context) {
	response.Success(c, s.contentSvc.ListPages(c.Request.Context()))
}

func (s *ContentHandler) GetPage(c *gin.Context) {
	page, err := s.contentSvc.GetPage(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *ContentHandler) UpdatePage(c *gin.Context) {
	var req dto.PageUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	page, err := s.contentSvc.UpdatePage(c.Request.Context(), c.Param("key"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
