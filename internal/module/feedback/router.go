package feedback

import (
	"capstone-showcase/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (f *ModuleFeedback) InitRouter(r *gin.RouterGroup) {
	feedbackGroup := r.Group("/feedback")

	feedbackGroup.GET("/list", ListFeedback)

	authGroup := feedbackGroup.Use(middleware.Auth(0))
	{
		authGroup.POST("/create", CreateFeedback)
	}
}
