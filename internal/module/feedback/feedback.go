package feedback

import (
	"strconv"

	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// FeedbackCreateReq 定义创建反馈请求的结构体
// author 为自由文本，不关联用户表（原型如此）
type FeedbackCreateReq struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Author    string `json:"author" binding:"required"`
}

// CreateFeedback 给项目添加反馈
func CreateFeedback(c *gin.Context) {
	var req FeedbackCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建反馈请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 校验项目存在
	var proj model.Project
	err := database.DB.First(&proj, req.ProjectID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("项目不存在"))
		return
	case err != nil:
		log.Error("查询项目失败", "error", err, "project_id", req.ProjectID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	fb := model.Feedback{
		ProjectID: req.ProjectID,
		Content:   req.Content,
		Author:    req.Author,
	}
	if err := database.DB.Create(&fb).Error; err != nil {
		log.Error("创建反馈失败", "error", err, "project_id", req.ProjectID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("反馈创建成功", "feedback_id", fb.ID, "project_id", fb.ProjectID)
	response.Success(c, fb)
}

// ListFeedback 按创建顺序返回指定项目的反馈
func ListFeedback(c *gin.Context) {
	projectIDStr := c.Query("project_id")
	if projectIDStr == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("project_id 不能为空"))
		return
	}
	projectID, err := strconv.ParseUint(projectIDStr, 10, 0)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest)
		return
	}

	feedbacks := make([]model.Feedback, 0)
	if err := database.DB.
		Where("project_id = ?", uint(projectID)).
		Order("id ASC").
		Find(&feedbacks).Error; err != nil {
		log.Error("查询反馈列表失败", "error", err, "project_id", projectID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, feedbacks)
}
