package test

import (
	"strings"
	"testing"

	"capstone-showcase/config"
	"capstone-showcase/internal/global/assetstore"
	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/jwt"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Setup 用内存 sqlite 搭一套隔离的测试环境，每个用例一个库
func Setup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Get()
	cfg.Storage.UploadDir = t.TempDir()
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.AccessExpire = 3600
	config.Set(cfg)

	jwt.Init(cfg.JWT)
	assetstore.Init()

	// 每个用例独立的具名内存库，连接池里的连接共享同一份数据
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	database.DB = db

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
}
