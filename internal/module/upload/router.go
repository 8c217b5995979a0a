package upload

import (
	"capstone-showcase/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUpload) InitRouter(r *gin.RouterGroup) {
	uploadGroup := r.Group("/upload")

	uploadGroup.Use(middleware.Auth(0))
	{
		uploadGroup.POST("/image", uploadImage)
		uploadGroup.POST("/presign", presign)
	}
}
