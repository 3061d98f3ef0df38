package dto

import "time"

// ── 公告模块 DTO ──

// CreateAnnouncementRequest 创建公告请求；department 为空表示全局公告
type CreateAnnouncementRequest struct {
	Title      *string `json:"title"      binding:"required"`
	Content    *string `json:"content"    binding:"required"`
	AuthorID   *string `json:"author_id"  binding:"required"`
	Department *string `json:"department"`
	Important  bool    `json:"important"`
	Semester   *string `json:"semester"`
}

// AnnouncementListRequest 公告列表查询参数
// 指定 department 时同时返回该院系公告与全局公告
type AnnouncementListRequest struct {
	PaginationRequest
	Department string `form:"department"`
}

// AnnouncementResponse 公告响应
type AnnouncementResponse struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	Department *string       `json:"department"`
	Important  bool          `json:"important"`
	Semester   *string       `json:"semester"`
	CreatedAt  time.Time     `json:"created_at"`
	Author     *UserResponse `json:"author"`
}
