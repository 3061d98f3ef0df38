package dto

import "time"

// ── 消息模块 DTO ──

// CreateMessageRequest 发送消息请求
type CreateMessageRequest struct {
	Content     *string `json:"content"       binding:"required"`
	ChatGroupID *string `json:"chat_group_id" binding:"required"`
	SenderID    *string `json:"sender_id"     binding:"required"`
}

// MessageListRequest 消息列表分页参数
type MessageListRequest struct {
	PaginationRequest
}

// MessageResponse 消息响应
type MessageResponse struct {
	ID          string        `json:"id"`
	Content     string        `json:"content"`
	ChatGroupID string        `json:"chat_group_id"`
	CreatedAt   time.Time     `json:"created_at"`
	Sender      *UserResponse `json:"sender"`
}
