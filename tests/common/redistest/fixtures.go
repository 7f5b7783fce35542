//go:build unit || e2e

package redistest

import (
	"context"
	"testing"
	"time"

	"open-classrooms/internal/infra/cache"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// ResetStore drops every key, leaving the service with an empty cache.
func ResetStore(client redis.Cmdable) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.FlushDB(ctx).Err()
}

// SeedLastRefresh writes a refresh timestamp the way the service does.
func SeedLastRefresh(t *testing.T, client redis.Cmdable, ts time.Time) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := client.Set(ctx, cache.LastRefreshKey, ts.Format(cache.TimestampLayout), 24*time.Hour).Err()
	require.NoError(t, err)
}

// RawValue returns the stored string for key, or "" when absent.
func RawValue(t *testing.T, client redis.Cmdable, key string) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	v, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ""
	}
	require.NoError(t, err)
	return v
}
