package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-manage/backend/internal/dto"
	"uni-manage/backend/internal/service"
	"uni-manage/backend/pkg/response"
)

// AnnouncementHandler 公告模块 HTTP 处理器
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(announcementSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc}
}

// CreateAnnouncement 创建公告
// POST /announcements/
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.announcementSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, result)
}

// ListAnnouncements 公告列表
// GET /announcements/?department=&skip=&limit=
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	var req dto.AnnouncementListRequest
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.announcementSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, list)
}

// GetAnnouncement 公告详情
// GET /announcements/:id
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	result, err := h.announcementSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AnnouncementHandler) handleAnnouncementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAnnouncementNotFound):
		response.NotFound(c, "Announcement not found")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
