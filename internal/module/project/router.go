package project

import (
	"capstone-showcase/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (p *ModuleProject) InitRouter(r *gin.RouterGroup) {
	// 定义项目模块的路由组，所有项目相关端点以 /project 为前缀
	projectGroup := r.Group("/project")

	// 浏览公开
	projectGroup.GET("/list", ListProjects)
	projectGroup.GET("/info/:id", GetProject)
	projectGroup.GET("/leaderboard", Leaderboard)

	authGroup := projectGroup.Use(middleware.Auth(0))
	{
		// 注册创建项目端点（multipart，含素材上传）
		authGroup.POST("/create", CreateProject)
	}

	adminGroup := projectGroup.Use(middleware.Auth(1))
	{
		// 链接可达性检查
		adminGroup.POST("/check-links/:id", CheckLinks)
	}
}
