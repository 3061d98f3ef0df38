package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-manage/backend/internal/dto"
	"uni-manage/backend/internal/service"
	"uni-manage/backend/pkg/response"
)

// LectureHandler 讲座模块 HTTP 处理器
type LectureHandler struct {
	lectureSvc service.LectureService
}

// NewLectureHandler 创建 LectureHandler
func NewLectureHandler(lectureSvc service.LectureService) *LectureHandler {
	return &LectureHandler{lectureSvc: lectureSvc}
}

// CreateLecture 创建讲座
// POST /lectures/
func (h *LectureHandler) CreateLecture(c *gin.Context) {
	var req dto.CreateLectureRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.lectureSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleLectureError(c, err)
		return
	}

	response.OK(c, result)
}

// ListLectures 讲座列表
// GET /lectures/?department=&semester=&date=&skip=&limit=
func (h *LectureHandler) ListLectures(c *gin.Context) {
	var req dto.LectureListRequest
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.lectureSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleLectureError(c, err)
		return
	}

	response.OK(c, list)
}

// GetLecture 讲座详情
// GET /lectures/:id
func (h *LectureHandler) GetLecture(c *gin.Context) {
	result, err := h.lectureSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleLectureError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *LectureHandler) handleLectureError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLectureNotFound):
		response.NotFound(c, "Lecture not found")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
