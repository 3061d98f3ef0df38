package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-manage/backend/internal/dto"
	"uni-manage/backend/internal/service"
	"uni-manage/backend/pkg/response"
)

// ChatGroupHandler 群聊模块 HTTP 处理器
type ChatGroupHandler struct {
	chatGroupSvc service.ChatGroupService
}

// NewChatGroupHandler 创建 ChatGroupHandler
func NewChatGroupHandler(chatGroupSvc service.ChatGroupService) *ChatGroupHandler {
	return &ChatGroupHandler{chatGroupSvc: chatGroupSvc}
}

// CreateChatGroup 创建群聊
// POST /chat-groups/
func (h *ChatGroupHandler) CreateChatGroup(c *gin.Context) {
	var req dto.CreateChatGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.chatGroupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleChatGroupError(c, err)
		return
	}

	response.OK(c, group)
}

// GetChatGroup 群聊详情
// GET /chat-groups/:id
func (h *ChatGroupHandler) GetChatGroup(c *gin.Context) {
	group, err := h.chatGroupSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleChatGroupError(c, err)
		return
	}

	response.OK(c, group)
}

// ListTeacherChatGroups 教师负责的群聊
// GET /chat-groups/teacher/:id
func (h *ChatGroupHandler) ListTeacherChatGroups(c *gin.Context) {
	var req dto.ChatGroupListRequest
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.chatGroupSvc.ListForTeacher(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleChatGroupError(c, err)
		return
	}

	response.OK(c, list)
}

// ListStudentChatGroups 学生所在院系与学期对应的群聊
// GET /chat-groups/student/:id
func (h *ChatGroupHandler) ListStudentChatGroups(c *gin.Context) {
	var req dto.ChatGroupListRequest
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.chatGroupSvc.ListForStudent(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleChatGroupError(c, err)
		return
	}

	response.OK(c, list)
}

func (h *ChatGroupHandler) handleChatGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, "Student not found")
	case errors.Is(err, service.ErrChatGroupNotFound):
		response.NotFound(c, "Chat group not found")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
