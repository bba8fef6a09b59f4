package handler

import (
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoSvc service.VideoService
}

func NewVideoHandler(videoSvc service.VideoService) *VideoHandler {
	return &VideoHandler{videoSvc: videoSvc}
}

func (s *VideoHandler) ListVideos(c *gin.Context) {
	catalog, err := s.videoSvc.Catalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, catalog.Videos)
}

func (s *VideoHandler) ListShorts(c *gin.Context) {
	catalog, err := s.videoSvc.Catalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, catalog.Shorts)
}

func (s *VideoHandler) GetVideo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	video, err := s.videoSvc.GetVideo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, video)
}

func (s *VideoHandler) ListChannels(c *gin.Context) {
	catalog, err := s.videoSvc.Catalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, catalog.Channels)
}

// GetChannel 频道信息及其长视频、短视频
func (s *VideoHandler) GetChannel(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, err := s.videoSvc.GetChannelPage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
