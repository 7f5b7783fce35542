package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"open-classrooms/internal/domain/availability"
	"open-classrooms/internal/infra"
	"open-classrooms/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

const (
	SnapshotKey    = "classrooms:availability"
	LastRefreshKey = "classrooms:last_refresh"
)

// TimestampLayout is RFC 3339 with an explicit UTC offset so stored values never depend on the
// reader's locale.
const TimestampLayout = time.RFC3339Nano

// RedisStore keeps the availability snapshot and its refresh timestamp under two keys sharing
// one expiry. Every call runs under its own timeout on a pooled connection.
type RedisStore struct {
	client    redis.Cmdable
	ttl       time.Duration
	opTimeout time.Duration
	logger    *slog.Logger
}

func NewRedisStore(client redis.Cmdable, cfg config.Config, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client:    client,
		ttl:       cfg.Cache.Expiry,
		opTimeout: cfg.Redis.Timeout,
		logger:    logger,
	}
}

// GetSnapshot returns a KindNotFound error on a miss and KindMalformed when the stored document
// cannot be decoded.
func (s *RedisStore) GetSnapshot(ctx context.Context) (availability.Snapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.client.Get(ctx, SnapshotKey).Bytes()
	if err == redis.Nil {
		return nil, infra.RepositoryError{Kind: infra.KindNotFound}
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to get snapshot", err)
	}

	var snap availability.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindMalformed, "failed to decode snapshot", err)
	}
	if snap == nil {
		snap = availability.Snapshot{}
	}
	return snap, nil
}

func (s *RedisStore) SaveSnapshot(ctx context.Context, snap availability.Snapshot) error {
	if snap == nil {
		snap = availability.Snapshot{}
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindMalformed, "failed to encode snapshot", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.client.Set(ctx, SnapshotKey, raw, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to save snapshot", err)
	}
	return nil
}

// GetLastRefresh returns (nil, nil) when no refresh has been recorded.
func (s *RedisStore) GetLastRefresh(ctx context.Context) (*time.Time, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.client.Get(ctx, LastRefreshKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to get last refresh", err)
	}

	ts, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindMalformed, "failed to parse last refresh", err)
	}
	return &ts, nil
}

func (s *RedisStore) SaveLastRefresh(ctx context.Context, ts time.Time) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.client.Set(ctx, LastRefreshKey, ts.Format(TimestampLayout), s.ttl).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to save last refresh", err)
	}
	return nil
}

// Ping backs the health endpoint.
func (s *RedisStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to ping store", err)
	}
	return nil
}

func (s *RedisStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opTimeout)
}
