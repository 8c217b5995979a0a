package project

import (
	"strconv"

	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/httpclient"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// LinkStatus 单个链接的探测结果
type LinkStatus struct {
	Field  string `json:"field"`
	URL    string `json:"url"`
	Status int    `json:"status"` // 0 表示请求失败
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// CheckLinks 探测项目各链接是否可达（管理员）
// 仅做状态汇报，不修改项目数据
func CheckLinks(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest)
		return
	}

	var proj model.Project
	dbErr := database.DB.First(&proj, uint(id)).Error
	switch {
	case errors.Is(dbErr, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("项目不存在"))
		return
	case dbErr != nil:
		log.Error("查询项目失败", "error", dbErr, "project_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	targets := []struct {
		field string
		url   string
	}{
		{"repo_url", proj.RepoURL},
		{"live_demo_url", proj.LiveDemoURL},
		{"video_url", proj.VideoURL},
	}

	results := make([]LinkStatus, 0, len(targets))
	for _, target := range targets {
		if target.url == "" {
			continue
		}
		status := LinkStatus{Field: target.field, URL: target.url}

		resp, err := httpclient.Client.R().SetContext(c.Request.Context()).Get(target.url)
		if err != nil {
			status.Error = err.Error()
			log.Warn("链接探测失败", "project_id", proj.ID, "url", target.url, "error", err)
		} else {
			status.Status = resp.StatusCode()
			status.OK = resp.StatusCode() < 400
		}
		results = append(results, status)
	}

	response.Success(c, results)
}
