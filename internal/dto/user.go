package dto

// ── 用户模块 DTO ──

// CreateUserRequest 创建用户请求
// 必填字段声明为指针：required 只拒绝缺失或 null，空字符串照常接受
type CreateUserRequest struct {
	Name       *string `json:"name"       binding:"required"`
	Email      *string `json:"email"      binding:"required"`
	Role       *string `json:"role"       binding:"required"`
	Department *string `json:"department" binding:"required"`
	Avatar     *string `json:"avatar"`
	Semester   *string `json:"semester"`
}

// UserListRequest 用户列表查询参数
type UserListRequest struct {
	PaginationRequest
}
