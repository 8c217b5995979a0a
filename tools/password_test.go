package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordEncryptAndCompare(t *testing.T) {
	hash := PasswordEncrypt("password123")
	require.NotEmpty(t, hash)
	require.NotEqual(t, "password123", hash)

	require.True(t, PasswordCompare("password123", hash))
	require.False(t, PasswordCompare("password456", hash))
}

func TestPasswordEncryptSalted(t *testing.T) {
	// 同一明文两次加密结果不同（随机盐）
	h1 := PasswordEncrypt("password123")
	h2 := PasswordEncrypt("password123")
	require.NotEqual(t, h1, h2)
}
