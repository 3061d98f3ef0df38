package dto

// ── 科目模块 DTO ──

// CreateSubjectRequest 创建科目请求
type CreateSubjectRequest struct {
	Name          *string `json:"name"          binding:"required"`
	Code          *string `json:"code"          binding:"required"`
	Department    *string `json:"department"    binding:"required"`
	ProfessorID   *string `json:"professor_id"  binding:"required"`
	Description   *string `json:"description"   binding:"required"`
	Semester      *string `json:"semester"      binding:"required"`
	Credits       *int    `json:"credits"`
	Prerequisites *string `json:"prerequisites"`
}

// SubjectListRequest 科目列表查询参数
type SubjectListRequest struct {
	PaginationRequest
	Department string `form:"department"`
	Semester   string `form:"semester"`
}

// SubjectResponse 科目响应（不含 created_at）
type SubjectResponse struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Code          string        `json:"code"`
	Department    string        `json:"department"`
	Description   string        `json:"description"`
	Semester      string        `json:"semester"`
	Credits       *int          `json:"credits"`
	Prerequisites *string       `json:"prerequisites"`
	Professor     *UserResponse `json:"professor"`
}
