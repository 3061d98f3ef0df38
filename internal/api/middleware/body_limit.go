package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"uni-manage/backend/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// Content-Length 已超限时直接返回 413；否则包装 MaxBytesReader，
// 由绑定层在读到超限时返回 413
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.RequestEntityTooLarge(c)
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
