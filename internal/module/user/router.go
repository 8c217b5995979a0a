package user

import (
	"capstone-showcase/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化用户模块的路由
// 所有用户相关端点以 /user 为前缀
func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	userGroup := r.Group("/user")

	// 注册与登录无需鉴权
	userGroup.POST("/register", Register)
	userGroup.POST("/login", Login)

	authGroup := userGroup.Use(middleware.Auth(0))
	{
		authGroup.GET("/me", getMe)
	}
}
