package dto

import "time"

// ── 作业模块 DTO ──

// CreateAssignmentRequest 创建作业请求
type CreateAssignmentRequest struct {
	Title       *string `json:"title"       binding:"required"`
	Description *string `json:"description" binding:"required"`
	DueDate     *string `json:"due_date"    binding:"required"`
	Department  *string `json:"department"  binding:"required"`
	Subject     *string `json:"subject"     binding:"required"`
	AuthorID    *string `json:"author_id"   binding:"required"`
	Attachments *string `json:"attachments"`
	Semester    *string `json:"semester"    binding:"required"`
}

// AssignmentListRequest 作业列表查询参数
type AssignmentListRequest struct {
	PaginationRequest
	Department string `form:"department"`
	Semester   string `form:"semester"`
}

// AssignmentResponse 作业响应
type AssignmentResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DueDate     string        `json:"due_date"`
	Department  string        `json:"department"`
	Subject     string        `json:"subject"`
	Attachments *string       `json:"attachments"`
	Semester    string        `json:"semester"`
	CreatedAt   time.Time     `json:"created_at"`
	Author      *UserResponse `json:"author"`
}
