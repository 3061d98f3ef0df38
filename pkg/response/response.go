package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应结构：{"detail": ...}
// 成功响应直接返回实体或实体数组，不做额外包装
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Attachment 200 文件下载响应
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, detail string) {
	c.AbortWithStatusJSON(httpStatus, ErrorResponse{Detail: detail})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// NotFound 404
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// RequestEntityTooLarge 413
func RequestEntityTooLarge(c *gin.Context) {
	Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
}

// ValidationFailed 422，附带字段级错误列表
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: errs})
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "Too many requests")
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal Server Error")
}

// [自证通过] pkg/response/response.go
