//go:build unit

package redisconn_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"open-classrooms/internal/infra/redisconn"
	"open-classrooms/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConnect(t *testing.T) {
	t.Run("invalid url", func(t *testing.T) {
		_, _, err := redisconn.Connect(config.RedisConfig{URL: "://nope"})
		assert.Error(t, err)
	})

	t.Run("ready on first attempt", func(t *testing.T) {
		s := miniredis.RunT(t)
		cfg := config.RedisConfig{URL: "redis://" + s.Addr(), Timeout: time.Second, PingAttempts: 3, PingInterval: 10 * time.Millisecond}

		client, cleanup, err := redisconn.Connect(cfg)
		require.NoError(t, err)
		defer cleanup()

		assert.True(t, redisconn.WaitReady(context.Background(), client, cfg, discardLogger()))
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		s := miniredis.RunT(t)
		addr := s.Addr()
		s.Close()

		cfg := config.RedisConfig{URL: "redis://" + addr, Timeout: 100 * time.Millisecond, PingAttempts: 2, PingInterval: 10 * time.Millisecond}
		client, cleanup, err := redisconn.Connect(cfg)
		require.NoError(t, err)
		defer cleanup()

		start := time.Now()
		assert.False(t, redisconn.WaitReady(context.Background(), client, cfg, discardLogger()))
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}
