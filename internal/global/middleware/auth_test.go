package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"capstone-showcase/config"
	"capstone-showcase/internal/global/jwt"
	"capstone-showcase/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func doAuth(t *testing.T, minLevel int, authHeader string) (response.ResponseBody, bool) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	Auth(minLevel)(c)

	if c.IsAborted() {
		var resp response.ResponseBody
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		return resp, false
	}
	return response.ResponseBody{}, true
}

func TestAuthPass(t *testing.T) {
	jwt.Init(config.JWT{AccessSecret: "test-secret", AccessExpire: 3600})

	token := jwt.CreateToken(jwt.Payload{UserID: 1, Email: "a@example.com", Role: "student"})
	_, passed := doAuth(t, 0, "Bearer "+token)
	require.True(t, passed)
}

func TestAuthMissingHeader(t *testing.T) {
	jwt.Init(config.JWT{AccessSecret: "test-secret", AccessExpire: 3600})

	resp, passed := doAuth(t, 0, "")
	require.False(t, passed)
	require.Equal(t, response.ErrTokenInvalid.Code, resp.Code)
}

func TestAuthBadScheme(t *testing.T) {
	jwt.Init(config.JWT{AccessSecret: "test-secret", AccessExpire: 3600})

	token := jwt.CreateToken(jwt.Payload{UserID: 1, Email: "a@example.com", Role: "student"})
	resp, passed := doAuth(t, 0, "Basic "+token)
	require.False(t, passed)
	require.Equal(t, response.ErrTokenInvalid.Code, resp.Code)
}

func TestAuthExpiredToken(t *testing.T) {
	jwt.Init(config.JWT{AccessSecret: "test-secret", AccessExpire: -60})
	token := jwt.CreateToken(jwt.Payload{UserID: 1, Email: "a@example.com", Role: "student"})
	jwt.Init(config.JWT{AccessSecret: "test-secret", AccessExpire: 3600})

	resp, passed := doAuth(t, 0, "Bearer "+token)
	require.False(t, passed)
	require.Equal(t, response.ErrTokenExpired.Code, resp.Code)
}

func TestAuthRoleLevel(t *testing.T) {
	jwt.Init(config.JWT{AccessSecret: "test-secret", AccessExpire: 3600})

	// 学生令牌进不了管理员接口
	student := jwt.CreateToken(jwt.Payload{UserID: 1, Email: "a@example.com", Role: "student"})
	resp, passed := doAuth(t, 1, "Bearer "+student)
	require.False(t, passed)
	require.Equal(t, response.ErrForbidden.Code, resp.Code)

	admin := jwt.CreateToken(jwt.Payload{UserID: 2, Email: "b@example.com", Role: "admin"})
	_, passed = doAuth(t, 1, "Bearer "+admin)
	require.True(t, passed)
}
