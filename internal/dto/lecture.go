package dto

// ── 讲座模块 DTO ──

// CreateLectureRequest 创建讲座请求
type CreateLectureRequest struct {
	Title       *string `json:"title"        binding:"required"`
	Description *string `json:"description"  binding:"required"`
	Date        *string `json:"date"         binding:"required"`
	StartTime   *string `json:"start_time"   binding:"required"`
	EndTime     *string `json:"end_time"     binding:"required"`
	Location    *string `json:"location"     binding:"required"`
	Department  *string `json:"department"   binding:"required"`
	Subject     *string `json:"subject"      binding:"required"`
	ProfessorID *string `json:"professor_id" binding:"required"`
	Materials   *string `json:"materials"`
	Semester    *string `json:"semester"     binding:"required"`
}

// LectureListRequest 讲座列表查询参数
type LectureListRequest struct {
	PaginationRequest
	Department string `form:"department"`
	Semester   string `form:"semester"`
	Date       string `form:"date"`
}

// LectureResponse 讲座响应（不含 created_at）
type LectureResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Date        string        `json:"date"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	Location    string        `json:"location"`
	Department  string        `json:"department"`
	Subject     string        `json:"subject"`
	Materials   *string       `json:"materials"`
	Semester    string        `json:"semester"`
	Professor   *UserResponse `json:"professor"`
}
