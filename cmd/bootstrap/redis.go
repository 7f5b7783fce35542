package bootstrap

import (
	"context"
	"log/slog"

	"open-classrooms/internal/infra/redisconn"
	"open-classrooms/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		func(client *redis.Client) redis.Cmdable {
			return client
		},
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	client, cleanup, err := redisconn.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			redisconn.WaitReady(ctx, client, cfg.Redis, logger)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
