package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"netcard-manager/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Connect accepts either a redis:// URL or host:port in REDIS_ADDR.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	var opt *redis.Options
	if strings.HasPrefix(cfg.Addr, "redis://") {
		parsed, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("redis client close failed", "error", err.Error())
			return
		}
		slog.Info("redis client closed", "addr", opt.Addr)
	}

	return client, cleanup, nil
}
