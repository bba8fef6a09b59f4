package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationSvc: s,
	}
}

// ListMine 广播通知加上发给自己的通知
func (h *NotificationHandler) ListMine(c *gin.Context) {
	response.Success(c, h.notificationSvc.ListMine(c.Request.Context(), c.GetUint64(middleware.UserIDKey)))
}

// MarkRead 标记单条已读
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.notificationSvc.MarkRead(c.Request.Context(), c.GetUint64(middleware.UserIDKey), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *NotificationHandler) ListAll(c *gin.Context) {
	response.Success(c, h.notificationSvc.ListAll(c.Request.Context()))
}

func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.NotificationSendDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	n, err := h.notificationSvc.Send(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, n)
}
