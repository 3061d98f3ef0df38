package dto

// ── 导出模块 DTO ──

// ExportFilterRequest 导出筛选参数
type ExportFilterRequest struct {
	Department string `form:"department"`
	Semester   string `form:"semester"`
}
