package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey 在 gin.Context 里存放本次请求的错误对象
const ErrorContextKey = "error"

// ResponseContextKey 在 gin.Context 里存放响应体，供 Sentry 上报取用
const ResponseContextKey = "response_body"

// Error 业务错误
// Code 和 Message 面向前端；cause 与其堆栈只进日志和 Sentry，不进响应体
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
	Origin  string `json:"origin"`

	cause error
}

func newError(code int32, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// GetCode 供 sentry 判断该错误要不要上报
func (e *Error) GetCode() int32 {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace 取 cause 携带的堆栈，没有挂 cause 时为 nil
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// Is 按错误码比较，WithOrigin / WithTips 派生出的错误与原错误视为同一个
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithOrigin 挂上底层错误，config.ModeDebug 下 Fail 会把 Origin 透给前端
// 底层错误没带堆栈时在这里补一层，Sentry 才有东西可挖
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	if _, ok := err.(stackTracer); !ok {
		err = pkgerrors.WithStack(err)
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Origin:  fmt.Sprintf("%+v", err),
		cause:   err,
	}
}

// WithTips 在消息后追加提示，release 模式下前端也能看到
func (e *Error) WithTips(details ...string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message + " " + fmt.Sprintf("%v", details),
		cause:   e.cause,
	}
}
