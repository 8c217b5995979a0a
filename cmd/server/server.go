package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"capstone-showcase/config"
	"capstone-showcase/internal/global/assetstore"
	"capstone-showcase/internal/global/cache"
	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/httpclient"
	"capstone-showcase/internal/global/jwt"
	"capstone-showcase/internal/global/logger"
	"capstone-showcase/internal/global/metrics"
	"capstone-showcase/internal/global/middleware"
	internalOtel "capstone-showcase/internal/global/otel"
	internalSentry "capstone-showcase/internal/global/sentry"
	"capstone-showcase/internal/module"
	"capstone-showcase/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	jwt.Init(config.Get().JWT)

	database.Init()

	if err := cache.Init(); err != nil {
		log.Warn("Redis 连接失败，排行榜走数据库", "error", err)
	}

	httpclient.Init()

	assetstore.Init()

	metrics.Init()

	if config.Get().Sentry.Dsn != "" {
		if err := internalSentry.Init(); err != nil {
			log.Error("Sentry 初始化失败", "error", err)
		}
	}

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
		// 确保程序退出时关闭 TracerProvider
		defer func() {
			if err := internalOtel.Shutdown(context.Background()); err != nil {
				log.Error("Failed to shutdown TracerProvider", "error", err)
			}
		}()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	if config.Get().Sentry.Dsn != "" {
		r.Use(internalSentry.Middleware())
	}
	r.Use(middleware.Recovery())

	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
	}

	// 本地存储模式下由进程自己托管上传目录
	storage := config.Get().Storage
	if config.Get().S3.Bucket == "" && strings.HasPrefix(storage.BaseURL, "/") {
		r.Static(storage.BaseURL, storage.UploadDir)
	}

	r.GET("/metrics", metrics.Handler())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
