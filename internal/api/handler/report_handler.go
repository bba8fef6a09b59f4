package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/api/middleware"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (s *ReportHandler) CreateReport(c *gin.Context) {
	var req dto.ReportCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	report, err := s.reportSvc.CreateReport(c.Request.Context(), c.GetUint64(middleware.UserIDKey), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *ReportHandler) ListReports(c *gin.Context) {
	response.Success(c, s.reportSvc.ListReports(c.Request.Context()))
}

func (s *ReportHandler) GetReport(c *gin.Context) {
	report, err := s.reportSvc.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *ReportHandler) UpdateStatus(c *gin.Context) {
	var req dto.ReportStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	report, err := s.reportSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
