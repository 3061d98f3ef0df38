package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-manage/backend/internal/dto"
	"uni-manage/backend/internal/service"
	"uni-manage/backend/pkg/response"
)

// SubjectHandler 科目模块 HTTP 处理器
type SubjectHandler struct {
	subjectSvc service.SubjectService
}

// NewSubjectHandler 创建 SubjectHandler
func NewSubjectHandler(subjectSvc service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc}
}

// CreateSubject 创建科目
// POST /subjects/
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.subjectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, result)
}

// ListSubjects 科目列表
// GET /subjects/?department=&semester=&skip=&limit=
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	var req dto.SubjectListRequest
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.subjectSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, list)
}

// GetSubject 科目详情
// GET /subjects/:id
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	result, err := h.subjectSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *SubjectHandler) handleSubjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, "Subject not found")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
