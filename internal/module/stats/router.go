package stats

import (
	"capstone-showcase/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (s *ModuleStats) InitRouter(r *gin.RouterGroup) {
	statsGroup := r.Group("/stats")

	statsGroup.Use(middleware.Auth(1))
	{
		statsGroup.GET("/export", exportExcel)
	}
}
