package vote

import (
	"strconv"

	"capstone-showcase/internal/global/cache"
	"capstone-showcase/internal/global/context"
	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/metrics"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CastReq 定义投票请求的结构体
type CastReq struct {
	ProjectID uint `json:"project_id" binding:"required"`
}

// cast 投票
// 每个用户全局只有一票：先查已投记录，再锁定项目、插入投票并累加计数，
// 全部在同一事务内完成；并发下重复插入由 user_id 唯一索引兜底
func cast(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CastReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定投票请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var updatedVotes int
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		// 全局查该用户是否已投过票（不限项目）
		var existing model.Vote
		err := tx.Where("user_id = ?", payload.UserID).First(&existing).Error
		if err == nil {
			return response.ErrAlreadyVoted
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ErrDatabase.WithOrigin(err)
		}

		// 校验项目存在
		var proj model.Project
		err = tx.First(&proj, req.ProjectID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return response.ErrNotFound.WithTips("项目不存在")
		case err != nil:
			return response.ErrDatabase.WithOrigin(err)
		}

		if err := tx.Create(&model.Vote{
			UserID:    payload.UserID,
			ProjectID: req.ProjectID,
		}).Error; err != nil {
			if database.IsDuplicateErr(err) {
				// 并发重复投票被唯一索引拦下
				return response.ErrAlreadyVoted
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		// 计数与投票记录同事务提交，失败时一起回滚
		if err := tx.Model(&model.Project{}).
			Where("id = ?", req.ProjectID).
			UpdateColumn("votes", gorm.Expr("votes + ?", 1)).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		// 回读累加后的计数，返回值以落库结果为准，不拿旧快照加一充数
		if err := tx.Select("votes").First(&proj, req.ProjectID).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		updatedVotes = proj.Votes
		return nil
	})
	if txErr != nil {
		response.Fail(c, txErr)
		return
	}

	metrics.VotesCast.Inc()

	// 排行榜缓存尽力而为地更新，失败不影响投票结果
	if cache.Enabled() {
		if err := cache.Client.ZIncrBy(c.Request.Context(), cache.LeaderboardKey,
			1, strconv.FormatUint(uint64(req.ProjectID), 10)).Err(); err != nil {
			log.Warn("更新排行榜缓存失败", "error", err, "project_id", req.ProjectID)
		}
	}

	log.Info("投票成功",
		"user_id", payload.UserID,
		"project_id", req.ProjectID,
		"votes", updatedVotes)

	response.Success(c, map[string]interface{}{
		"project_id": req.ProjectID,
		"votes":      updatedVotes,
	})
}

// count 查询项目票数，此处不验证项目是否存在
func count(c *gin.Context) {
	projectIDStr := c.Query("project_id")
	if projectIDStr == "" {
		response.Fail(c, response.ErrInvalidRequest)
		return
	}
	if _, err := strconv.ParseUint(projectIDStr, 10, 0); err != nil {
		response.Fail(c, response.ErrInvalidRequest)
		return
	}

	var sum int64
	err := database.DB.
		Model(&model.Vote{}).
		Where("project_id = ?", projectIDStr).
		Count(&sum).Error
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, sum)
}

// ask 查询当前用户是否已用掉自己的一票，以及投给了哪个项目
func ask(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var existing model.Vote
	err := database.DB.Where("user_id = ?", payload.UserID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Success(c, map[string]interface{}{"voted": false})
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
	default:
		response.Success(c, map[string]interface{}{
			"voted":      true,
			"project_id": existing.ProjectID,
		})
	}
}
