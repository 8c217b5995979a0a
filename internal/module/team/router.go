package team

import (
	"capstone-showcase/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (t *ModuleTeam) InitRouter(r *gin.RouterGroup) {
	teamGroup := r.Group("/team")

	// 列表和详情公开
	teamGroup.GET("/list", ListTeams)
	teamGroup.GET("/info/:id", GetTeam)

	authGroup := teamGroup.Use(middleware.Auth(0))
	{
		authGroup.POST("/create", CreateTeam)
		authGroup.POST("/join", JoinTeam)
	}
}
