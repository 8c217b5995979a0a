package project

import (
	"encoding/json"
	"mime/multipart"
	"strconv"

	"capstone-showcase/internal/global/assetstore"
	"capstone-showcase/internal/global/cache"
	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/metrics"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectCreateReq 定义创建项目请求的结构体（multipart 表单）
type ProjectCreateReq struct {
	TeamID      uint   `form:"team_id" binding:"required"`
	Title       string `form:"title" binding:"required"`
	Summary     string `form:"summary" binding:"required"`
	Description string `form:"description" binding:"required"`
	Building    string `form:"building"`
	Members     string `form:"members"`

	Tags       string `form:"tags"`       // 逗号分隔
	Difficulty string `form:"difficulty"` // Beginner / Intermediate / Advanced

	RepoURL     string `form:"repo_url"`
	Branch      string `form:"branch"`
	LiveDemoURL string `form:"live_demo_url"`
	VideoURL    string `form:"video_url"`

	OneWord   string `form:"one_word"`
	Bug       string `form:"bug"`
	NextSkill string `form:"next_skill"`

	NewVersionDesc string `form:"new_version_desc"`

	Thumbnail *multipart.FileHeader   `form:"thumbnail"`
	Assets    []*multipart.FileHeader `form:"assets"`
	CIBadge   *multipart.FileHeader   `form:"ci_badge"`
}

// CreateProject 处理提交项目请求
// 素材先落盘换取引用，项目行带着全部引用一次性提交
func CreateProject(c *gin.Context) {
	var req ProjectCreateReq
	if err := c.ShouldBind(&req); err != nil {
		log.Error("绑定创建项目请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 校验团队存在
	var team model.Team
	err := database.DB.First(&team, req.TeamID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("团队不存在", "team_id", req.TeamID)
		response.Fail(c, response.ErrNotFound.WithTips("团队不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "team_id", req.TeamID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	store := assetstore.Get()

	var thumbnailURL string
	if req.Thumbnail != nil {
		if thumbnailURL, err = store.SaveFile(req.Thumbnail); err != nil {
			log.Error("缩略图保存失败", "error", err)
			response.Fail(c, response.ErrServerInternal.WithOrigin(err))
			return
		}
		metrics.AssetsStored.Inc()
	}

	// 素材按上传顺序收集引用
	assetURLs := make([]string, 0, len(req.Assets))
	for _, fileHeader := range req.Assets {
		assetURL, err := store.SaveFile(fileHeader)
		if err != nil {
			log.Error("素材保存失败", "error", err, "filename", fileHeader.Filename)
			response.Fail(c, response.ErrServerInternal.WithOrigin(err))
			return
		}
		metrics.AssetsStored.Inc()
		assetURLs = append(assetURLs, assetURL)
	}

	var ciBadgeURL string
	if req.CIBadge != nil {
		if ciBadgeURL, err = store.SaveFile(req.CIBadge); err != nil {
			log.Error("CI 徽章保存失败", "error", err)
			response.Fail(c, response.ErrServerInternal.WithOrigin(err))
			return
		}
		metrics.AssetsStored.Inc()
	}

	encodedAssets, err := json.Marshal(assetURLs)
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "Beginner"
	}

	proj := model.Project{
		TeamID:         req.TeamID,
		Title:          req.Title,
		Summary:        req.Summary,
		Description:    req.Description,
		Building:       req.Building,
		Members:        req.Members,
		Tags:           req.Tags,
		Difficulty:     difficulty,
		RepoURL:        req.RepoURL,
		Branch:         req.Branch,
		LiveDemoURL:    req.LiveDemoURL,
		VideoURL:       req.VideoURL,
		OneWord:        req.OneWord,
		Bug:            req.Bug,
		NextSkill:      req.NextSkill,
		NewVersionDesc: req.NewVersionDesc,
		ThumbnailURL:   thumbnailURL,
		AssetURLs:      datatypes.JSON(encodedAssets),
		CIBadgeURL:     ciBadgeURL,
		Votes:          0,
	}

	if err := database.DB.Create(&proj).Error; err != nil {
		log.Error("创建项目失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	metrics.ProjectsCreated.Inc()
	log.Info("项目提交成功",
		"project_id", proj.ID,
		"team_id", proj.TeamID,
		"title", proj.Title)

	response.Success(c, proj)
}

// ListProjects 获取全部项目，按创建顺序返回
func ListProjects(c *gin.Context) {
	projects := make([]model.Project, 0)
	if err := database.DB.Order("id ASC").Find(&projects).Error; err != nil {
		log.Error("查询项目列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, projects)
}

// GetProject 获取项目详情，附带反馈列表
func GetProject(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest)
		return
	}

	var proj model.Project
	dbErr := database.DB.Preload("Feedbacks", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&proj, uint(id)).Error
	switch {
	case errors.Is(dbErr, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("项目不存在"))
		return
	case dbErr != nil:
		log.Error("查询项目失败", "error", dbErr, "project_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}
	response.Success(c, proj)
}

// Leaderboard 按票数排名返回项目
// Redis 可用时走排行榜 ZSET，否则直接查库
func Leaderboard(c *gin.Context) {
	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	if cache.Enabled() {
		if projects, ok := leaderboardFromCache(c, limit); ok {
			response.Success(c, projects)
			return
		}
		// 缓存为空或读取失败时退回数据库
	}

	projects := make([]model.Project, 0)
	if err := database.DB.Order("votes DESC, id ASC").Limit(limit).Find(&projects).Error; err != nil {
		log.Error("查询排行榜失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, projects)
}

func leaderboardFromCache(c *gin.Context, limit int) ([]model.Project, bool) {
	entries, err := cache.Client.ZRevRangeWithScores(c.Request.Context(), cache.LeaderboardKey, 0, int64(limit-1)).Result()
	if err != nil || len(entries) == 0 {
		return nil, false
	}

	ids := make([]uint, 0, len(entries))
	for _, entry := range entries {
		idStr, ok := entry.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(idStr, 10, 0)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, false
	}

	var projects []model.Project
	if err := database.DB.Where("id IN ?", ids).Find(&projects).Error; err != nil {
		log.Warn("排行榜回源查询失败", "error", err)
		return nil, false
	}

	// 按 ZSET 的排名重排
	byID := make(map[uint]model.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	ordered := make([]model.Project, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, true
}
