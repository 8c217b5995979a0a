package user

import (
	"strings"

	"capstone-showcase/internal/global/context"
	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/jwt"
	"capstone-showcase/internal/global/metrics"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"
	"capstone-showcase/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RegisterReq 定义注册请求的结构体
type RegisterReq struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	ProfilePicture string `json:"profile_picture"` // 可选，头像引用（先走上传接口）
}

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// validatePasswordStrength 验证密码强度
func validatePasswordStrength(password string) error {
	if password == "" {
		return errors.New("密码不能为空")
	}
	if len(password) < 8 {
		return errors.New("密码长度必须至少8字符")
	}
	return nil
}

// Register 处理用户注册请求
// 邮箱全局唯一，重复注册直接拒绝，不产生新行
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 验证密码强度
	if err := validatePasswordStrength(req.Password); err != nil {
		log.Warn("密码强度验证失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 检查邮箱是否已存在
	var existingUser model.User
	err := database.DB.Where("email = ?", email).First(&existingUser).Error
	if err == nil {
		log.Warn("用户已存在", "email", email)
		response.Fail(c, response.ErrAlreadyExists.WithTips("该邮箱已注册"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "email", email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 加密密码
	encryptedPassword := tools.PasswordEncrypt(req.Password)
	if encryptedPassword == "" {
		response.Fail(c, response.ErrServerInternal)
		return
	}

	user := model.User{
		Name:           req.Name,
		Email:          email,
		Password:       encryptedPassword,
		Role:           model.RoleStudent,
		ProfilePicture: req.ProfilePicture,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		// 预检查之后插入之前被别人抢注，邮箱唯一索引兜底
		if database.IsDuplicateErr(err) {
			log.Warn("用户已存在", "email", email)
			response.Fail(c, response.ErrAlreadyExists.WithTips("该邮箱已注册"))
			return
		}
		log.Error("创建用户失败", "error", err, "email", email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	metrics.UsersRegistered.Inc()
	log.Info("用户注册成功",
		"user_id", user.ID,
		"email", user.Email)

	response.Success(c, user)
}

// Login 处理用户登录请求
// 校验通过后签发 JWT，令牌在过期前一直有效（无吊销机制）
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 查询用户是否存在
	var user model.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "email", email)
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "email", email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 验证密码
	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("密码错误", "email", email)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	log.Info("用户登录成功",
		"user_id", user.ID,
		"email", user.Email)

	response.Success(c, map[string]interface{}{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		}),
		"token_type": "Bearer",
		"user":       user,
	})
}

func getMe(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	// 以令牌主体重新查库，拿最新的用户信息
	var user model.User
	err := database.DB.Where("id = ?", payload.UserID).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, user)
}
