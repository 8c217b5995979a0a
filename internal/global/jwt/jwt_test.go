package jwt

import (
	"testing"

	"capstone-showcase/config"

	"github.com/stretchr/testify/require"
)

func TestCreateAndParseToken(t *testing.T) {
	Init(config.JWT{AccessSecret: "test-secret", AccessExpire: 3600})

	token := CreateToken(Payload{UserID: 42, Email: "a@example.com", Role: "student"})
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, "a@example.com", claims.Email)
	require.Equal(t, "student", claims.Role)
	require.Equal(t, "a@example.com", claims.Subject)
}

func TestParseTokenExpired(t *testing.T) {
	// 有效期为负直接签出过期令牌
	Init(config.JWT{AccessSecret: "test-secret", AccessExpire: -60})
	token := CreateToken(Payload{UserID: 1, Email: "a@example.com", Role: "student"})

	Init(config.JWT{AccessSecret: "test-secret", AccessExpire: 3600})
	_, err := ParseToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenWrongSecret(t *testing.T) {
	Init(config.JWT{AccessSecret: "secret-one", AccessExpire: 3600})
	token := CreateToken(Payload{UserID: 1, Email: "a@example.com", Role: "student"})

	// 换密钥后旧令牌全部失效
	Init(config.JWT{AccessSecret: "secret-two", AccessExpire: 3600})
	_, err := ParseToken(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenGarbage(t *testing.T) {
	Init(config.JWT{AccessSecret: "test-secret", AccessExpire: 3600})
	_, err := ParseToken("not.a.token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenMalformedSubject(t *testing.T) {
	Init(config.JWT{AccessSecret: "test-secret", AccessExpire: 3600})
	token := CreateToken(Payload{UserID: 0, Email: ""})

	_, err := ParseToken(token)
	require.ErrorIs(t, err, ErrMalformedSubject)
}
