package cache

import (
	"context"
	"fmt"
	"time"

	"capstone-showcase/config"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// LeaderboardKey 投票排行榜 ZSET 的键，member 为项目 ID
const LeaderboardKey = "showcase:vote:leaderboard"

// Init 初始化 Redis 客户端，未配置 host 时跳过（排行榜退化为直接查库）
func Init() error {
	cfg := config.Get().Redis
	if cfg.Host == "" {
		return nil
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Client.Ping(ctx).Err(); err != nil {
		Client = nil
		return err
	}
	return nil
}

func Enabled() bool {
	return Client != nil
}
