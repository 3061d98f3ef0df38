package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-manage/backend/internal/dto"
	"uni-manage/backend/internal/service"
	"uni-manage/backend/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportAssignments 导出作业
// GET /export/assignments?department=&semester=
func (h *ExportHandler) ExportAssignments(c *gin.Context) {
	var req dto.ExportFilterRequest
	if !bindQuery(c, &req) {
		return
	}

	buf, filename, err := h.exportSvc.ExportAssignments(c.Request.Context(), &req)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, filename, contentTypeXLSX, buf.Bytes())
}

// ExportLectures 导出讲座日历
// GET /export/lectures.ics?department=&semester=
func (h *ExportHandler) ExportLectures(c *gin.Context) {
	var req dto.ExportFilterRequest
	if !bindQuery(c, &req) {
		return
	}

	buf, filename, err := h.exportSvc.ExportLectures(c.Request.Context(), &req)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, filename, contentTypeICS, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoAssignments):
		response.NotFound(c, "No assignments to export")
	case errors.Is(err, service.ErrExportNoLectures):
		response.NotFound(c, "No lectures to export")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
