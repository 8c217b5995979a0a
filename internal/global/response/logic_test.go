package response

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	// 派生错误与原错误码相同，errors.Is 视为同一个
	derived := ErrNotFound.WithTips("项目不存在")
	require.ErrorIs(t, derived, ErrNotFound)

	wrapped := ErrDatabase.WithOrigin(fmt.Errorf("connection refused"))
	require.ErrorIs(t, wrapped, ErrDatabase)

	require.NotErrorIs(t, derived, ErrDatabase)
}

func TestWithOrigin(t *testing.T) {
	origin := fmt.Errorf("connection refused")
	e := ErrDatabase.WithOrigin(origin)

	// 错误码和对外消息不随底层错误变化
	require.Equal(t, ErrDatabase.Code, e.Code)
	require.Equal(t, ErrDatabase.Message, e.Message)
	require.Contains(t, e.Origin, "connection refused")

	// cause 链可被 errors.Unwrap 还原
	require.ErrorContains(t, errors.Unwrap(e), "connection refused")

	// 无堆栈的底层错误在挂载时补了堆栈
	require.NotNil(t, e.StackTrace())

	// 原始错误对象不被改动
	require.Empty(t, ErrDatabase.Origin)
	require.Nil(t, ErrDatabase.StackTrace())
}

func TestWithOriginNil(t *testing.T) {
	require.Same(t, ErrDatabase, ErrDatabase.WithOrigin(nil))
}

func TestWithTips(t *testing.T) {
	e := ErrInvalidRequest.WithTips("缺少上传文件")

	require.Equal(t, ErrInvalidRequest.Code, e.Code)
	require.Contains(t, e.Message, ErrInvalidRequest.Message)
	require.Contains(t, e.Message, "缺少上传文件")
}
