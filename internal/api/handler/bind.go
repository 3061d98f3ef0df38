package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"uni-manage/backend/pkg/response"
)

var validatorOnce sync.Once

// SetupValidator 让校验错误使用 json / form 标签中的字段名
// 只需在路由初始化时调用一次
func SetupValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// bindJSON 解析请求体；失败时已写入 413 / 422 响应，调用方直接 return
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		writeBindError(c, "body", err)
		return false
	}
	return true
}

// bindQuery 解析查询参数；失败时已写入 422 响应
func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		writeBindError(c, "query", err)
		return false
	}
	return true
}

func writeBindError(c *gin.Context, loc string, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.RequestEntityTooLarge(c)
		return
	}
	_ = c.Error(err)
	response.ValidationFailed(c, fieldErrors(loc, err))
}

// fieldErrors 将绑定 / 校验错误转换为 {loc, msg, type} 列表
func fieldErrors(loc string, err error) []response.FieldError {
	var (
		verrs     validator.ValidationErrors
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		numErr    *strconv.NumError
	)

	switch {
	case errors.As(err, &verrs):
		out := make([]response.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, response.FieldError{
				Loc:  []string{loc, fe.Field()},
				Msg:  validationMessage(fe),
				Type: validationType(fe),
			})
		}
		return out
	case errors.As(err, &typeErr):
		return []response.FieldError{{
			Loc:  []string{loc, typeErr.Field},
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type.Kind()),
			Type: "type_error." + typeErr.Type.Kind().String(),
		}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return []response.FieldError{{
			Loc:  []string{loc},
			Msg:  "invalid JSON body",
			Type: "value_error.jsondecode",
		}}
	case errors.As(err, &numErr):
		return []response.FieldError{{
			Loc:  []string{loc},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}}
	default:
		return []response.FieldError{{
			Loc:  []string{loc},
			Msg:  err.Error(),
			Type: "value_error",
		}}
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return "ensure this value is greater than or equal to " + fe.Param()
	case "max":
		return "ensure this value is less than or equal to " + fe.Param()
	case "email":
		return "value is not a valid email address"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func validationType(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value_error.missing"
	case "min":
		return "value_error.number.not_ge"
	case "max":
		return "value_error.number.not_le"
	default:
		return "value_error." + fe.Tag()
	}
}
