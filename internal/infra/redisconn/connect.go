package redisconn

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"open-classrooms/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	opts.DialTimeout = cfg.Timeout
	opts.ReadTimeout = cfg.Timeout
	opts.WriteTimeout = cfg.Timeout

	client := redis.NewClient(opts)

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing redis client", "error", err)
		}
	}

	return client, cleanup, nil
}

// WaitReady pings until Redis answers or attempts run out. It never fails the caller: the service
// starts degraded and every store operation reports its own failure.
func WaitReady(ctx context.Context, client *redis.Client, cfg config.RedisConfig, logger *slog.Logger) bool {
	attempts := cfg.PingAttempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 1; i <= attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			logger.Info("Redis connection established", "attempt", i)
			return true
		}

		logger.Warn("Waiting for Redis to be ready", "attempt", i, "max_attempts", attempts, "error", err)
		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(cfg.PingInterval):
		}
	}

	logger.Error("Redis not reachable, continuing in degraded mode", "attempts", attempts)
	return false
}
