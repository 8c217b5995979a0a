package response

import (
	"fmt"
	"net/http"

	"capstone-showcase/config"
	"capstone-showcase/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

// 业务错误码定义，HTTP 状态码统一为 200，以 body 中的 code 区分
var (
	ErrInvalidRequest  = newError(400, "请求参数错误")
	ErrUnauthorized    = newError(401, "未登录或登录已失效")
	ErrTokenInvalid    = newError(4011, "令牌无效")
	ErrTokenExpired    = newError(4012, "令牌已过期")
	ErrInvalidPassword = newError(4013, "邮箱或密码错误")
	ErrForbidden       = newError(403, "没有操作权限")
	ErrNotFound        = newError(404, "资源不存在")
	ErrAlreadyExists   = newError(409, "资源已存在")
	ErrAlreadyVoted    = newError(4091, "已经投过票")
	ErrDatabase        = newError(500, "数据库错误")
	ErrServerInternal  = newError(50000, "服务器内部错误")
)

// ResponseBody 统一响应体
type ResponseBody struct {
	Code int32       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success 返回成功响应，data 可省略
func Success(c *gin.Context, data ...interface{}) {
	body := ResponseBody{
		Code: 200,
		Msg:  "ok",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应
// 非 *Error 类型的错误一律按内部错误处理
func Fail(c *gin.Context, err error) {
	e, ok := err.(*Error)
	if !ok {
		e = ErrServerInternal.WithOrigin(err)
	}

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	// 仅在 debug 模式下向前端透出原始错误
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = map[string]string{"origin": e.Origin}
	}

	c.Set(ErrorContextKey, e)
	c.Set(ResponseContextKey, body)

	// 服务器级错误上报 Sentry
	sentry.CaptureException(c, e)

	c.JSON(http.StatusOK, body)
}

// Recovery 捕获 handler panic，记录后返回内部错误
// 配合 middleware.Recovery 使用
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		Fail(c, ErrServerInternal.WithOrigin(err))
		c.Abort()
	}
}
