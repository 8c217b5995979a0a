package test

import (
	"testing"

	"capstone-showcase/internal/global/response"

	"github.com/stretchr/testify/require"
)

func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
	require.Equal(t, expected.Message, resp.Msg)
}

// CodeEqual 只比对错误码，WithTips 之后消息会变
func CodeEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}

// Data 把 Success 返回的 data 字段断言成 map 方便取值
func Data(t *testing.T, resp response.ResponseBody) map[string]any {
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data 不是对象: %v", resp.Data)
	return data
}
