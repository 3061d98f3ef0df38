package handler

import (
	"github.com/gin-gonic/gin"

	"uni-manage/backend/internal/dto"
	"uni-manage/backend/internal/service"
	"uni-manage/backend/pkg/response"
)

// MessageHandler 群聊消息 HTTP 处理器
type MessageHandler struct {
	messageSvc service.MessageService
}

// NewMessageHandler 创建 MessageHandler
func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

// CreateMessage 发送消息
// POST /messages/
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.messageSvc.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, msg)
}

// ListMessages 群聊消息（按时间升序）
// GET /messages/:chat_group_id
func (h *MessageHandler) ListMessages(c *gin.Context) {
	var req dto.MessageListRequest
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.messageSvc.ListByChatGroup(c.Request.Context(), c.Param("chat_group_id"), &req)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}
