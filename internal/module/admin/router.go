package admin

import (
	"capstone-showcase/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleAdmin) InitRouter(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin")

	adminGroup.Use(middleware.Auth(1))
	{
		// 清库是显式管理操作，绝不在启动时隐式执行
		adminGroup.POST("/reset", reset)
		adminGroup.POST("/seed", seed)
	}
}
