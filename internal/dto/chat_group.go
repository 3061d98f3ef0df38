package dto

import "time"

// ── 群聊模块 DTO ──

// CreateChatGroupRequest 创建群聊请求
type CreateChatGroupRequest struct {
	Name      *string `json:"name"       binding:"required"`
	SubjectID *string `json:"subject_id" binding:"required"`
	TeacherID *string `json:"teacher_id" binding:"required"`
	Semester  *string `json:"semester"   binding:"required"`
}

// ChatGroupListRequest 按教师 / 学生列出群聊的分页参数
type ChatGroupListRequest struct {
	PaginationRequest
}

// ChatGroupResponse 群聊响应
type ChatGroupResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	SubjectID string        `json:"subject_id"`
	Semester  string        `json:"semester"`
	CreatedAt time.Time     `json:"created_at"`
	Teacher   *UserResponse `json:"teacher"`
}
