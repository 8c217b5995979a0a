package config

import (
	"log"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var instance *Config

// Init 加载配置：先读取 config.yaml，再用环境变量覆盖
// 必须在所有其他全局组件初始化之前调用
func Init() {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	cfg := defaultConfig()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("读取配置文件失败: %v", err)
		}
		// 没有配置文件时仅使用默认值和环境变量
	} else if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	// 环境变量覆盖，前缀 SHOWCASE
	if err := envconfig.Process("showcase", cfg); err != nil {
		log.Fatalf("读取环境变量失败: %v", err)
	}

	normalize(cfg)
	instance = cfg
}

// Get 获取全局配置，未调用 Init 时返回默认配置（用于单元测试）
func Get() *Config {
	if instance == nil {
		cfg := defaultConfig()
		normalize(cfg)
		instance = cfg
	}
	return instance
}

// Set 替换全局配置，仅用于测试
func Set(cfg *Config) {
	normalize(cfg)
	instance = cfg
}

func defaultConfig() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "8080",
		Prefix: "api",
		Mode:   ModeDebug,
		Storage: Storage{
			UploadDir: "./uploads",
			BaseURL:   "/uploads",
		},
		JWT: JWT{
			AccessExpire: 7 * 24 * 3600,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		},
	}
}

func normalize(cfg *Config) {
	if cfg.Mode != ModeRelease {
		cfg.Mode = ModeDebug
	}
	cfg.Prefix = strings.Trim(cfg.Prefix, "/")
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.Storage.UploadDir == "" {
		cfg.Storage.UploadDir = "./uploads"
	}
	if cfg.JWT.AccessExpire <= 0 {
		cfg.JWT.AccessExpire = 7 * 24 * 3600
	}
}
