package middleware

import (
	"strings"

	"capstone-showcase/internal/global/jwt"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"

	"github.com/gin-gonic/gin"
)

// Auth 鉴权中间件，minLevel 为访问所需的最低角色等级
// 0 为普通学生，1 为管理员
func Auth(minLevel int) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取 Authorization 头
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		// 检查 Bearer 前缀并提取 token
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		payload, err := jwt.ParseToken(token)
		if err != nil {
			switch err {
			case jwt.ErrTokenExpired:
				response.Fail(c, response.ErrTokenExpired)
			default:
				response.Fail(c, response.ErrTokenInvalid)
			}
			c.Abort()
			return
		}

		if model.RoleLevel(payload.Role) < minLevel {
			response.Fail(c, response.ErrForbidden)
			c.Abort()
			return
		}

		c.Set("payload", payload)
		c.Next()
	}
}
