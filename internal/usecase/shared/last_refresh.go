package shared

//go:generate mockgen -source=last_refresh.go -destination=../../../tests/mock/shared/last_refresh.go -package=sharedmock

import (
	"context"
	"log/slog"
	"time"

	"open-classrooms/internal/infra"
)

// Refresher runs one refresh cycle. Read paths use it to fill an empty cache.
type Refresher interface {
	Refresh(ctx context.Context) (*RefreshOutcome, error)
}

// LoadLastRefresh is the single place stored refresh timestamps are deserialized. A value that
// cannot be parsed is reported as absent, which makes every caller lean toward refreshing.
// Store failures are still returned.
func LoadLastRefresh(ctx context.Context, store AvailabilityStore, logger *slog.Logger) (*time.Time, error) {
	last, err := store.GetLastRefresh(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindMalformed) {
			logger.Warn("Stored refresh timestamp is malformed, treating as absent", "error", err)
			return nil, nil
		}
		return nil, err
	}
	return last, nil
}
