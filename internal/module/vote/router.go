package vote

import (
	"capstone-showcase/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (*ModuleVote) InitRouter(r *gin.RouterGroup) {
	voteGroup := r.Group("/vote")

	voteGroup.GET("/count", count)

	authGroup := voteGroup.Use(middleware.Auth(0))
	{
		authGroup.POST("/cast", cast)
		authGroup.GET("/ask", ask)
	}
}
