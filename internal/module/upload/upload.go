package upload

import (
	"capstone-showcase/internal/global/assetstore"
	"capstone-showcase/internal/global/metrics"
	"capstone-showcase/internal/global/response"

	"github.com/gin-gonic/gin"
)

// uploadImage 保存单个上传文件并返回引用
// 头像、团队 logo 等先走这里换引用，再把引用写进实体
func uploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("缺少上传文件"))
		return
	}

	url, err := assetstore.Get().SaveFile(fileHeader)
	if err != nil {
		log.Error("文件保存失败", "error", err, "filename", fileHeader.Filename)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	metrics.AssetsStored.Inc()
	log.Info("文件上传成功", "filename", fileHeader.Filename, "url", url)
	response.Success(c, map[string]string{"url": url})
}

// PresignReq 定义预签名上传请求的结构体
type PresignReq struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// presign 生成 S3 预签名上传 URL，未配置 S3 时不可用
func presign(c *gin.Context) {
	var req PresignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	result, err := assetstore.Get().PresignedUpload(c.Request.Context(), assetstore.PresignedUploadRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		ExpiresIn:   req.ExpiresIn,
	})
	if err != nil {
		log.Warn("生成预签名 URL 失败", "error", err, "filename", req.Filename)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	response.Success(c, result)
}
