package team

import (
	"strconv"

	"capstone-showcase/internal/global/context"
	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// TeamCreateReq 定义创建团队请求的结构体
type TeamCreateReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"` // 可选，先走上传接口拿引用
}

// JoinTeamReq 定义加入团队请求的结构体
// user_id 可选：管理员可代他人加入，普通用户只能加自己
type JoinTeamReq struct {
	TeamID uint `json:"team_id" binding:"required"`
	UserID uint `json:"user_id"`
}

// CreateTeam 处理创建团队请求
func CreateTeam(c *gin.Context) {
	var req TeamCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建团队请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	team := model.Team{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	}

	if err := database.DB.Create(&team).Error; err != nil {
		log.Error("创建团队失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("团队创建成功", "team_id", team.ID, "name", team.Name)
	response.Success(c, team)
}

// ListTeams 获取全部团队，无数据返回空列表
func ListTeams(c *gin.Context) {
	teams := make([]model.Team, 0)
	if err := database.DB.Order("id ASC").Find(&teams).Error; err != nil {
		log.Error("查询团队列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, teams)
}

// GetTeam 获取团队详情，附带成员列表
func GetTeam(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	var team model.Team
	dbErr := database.DB.Preload("Members").Preload("Members.User").First(&team, id).Error
	switch {
	case errors.Is(dbErr, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("团队不存在"))
		return
	case dbErr != nil:
		log.Error("查询团队失败", "error", dbErr, "team_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}
	response.Success(c, team)
}

// JoinTeam 添加团队成员
// 原型没有唯一约束，重复加入会生成新行，保持该行为
func JoinTeam(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req JoinTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定加入团队请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	userID := payload.UserID
	if req.UserID != 0 && req.UserID != payload.UserID {
		// 代他人加入需要管理员权限
		if model.RoleLevel(payload.Role) < 1 {
			response.Fail(c, response.ErrForbidden)
			return
		}
		userID = req.UserID
	}

	// 校验团队存在
	var team model.Team
	err := database.DB.First(&team, req.TeamID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("团队不存在"))
		return
	case err != nil:
		log.Error("查询团队失败", "error", err, "team_id", req.TeamID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 校验用户存在
	var user model.User
	err = database.DB.First(&user, userID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		log.Error("查询用户失败", "error", err, "user_id", userID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	member := model.TeamMember{
		TeamID: req.TeamID,
		UserID: userID,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		log.Error("添加团队成员失败", "error", err, "team_id", req.TeamID, "user_id", userID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("加入团队成功", "team_id", req.TeamID, "user_id", userID)
	response.Success(c, member)
}

func parseID(raw string) (uint, error) {
	if raw == "" {
		return 0, response.ErrInvalidRequest
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, response.ErrInvalidRequest
	}
	return uint(id), nil
}
