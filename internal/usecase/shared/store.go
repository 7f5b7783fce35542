package shared

//go:generate mockgen -source=store.go -destination=../../../tests/mock/shared/store.go -package=sharedmock

import (
	"context"
	"time"

	"open-classrooms/internal/domain/availability"
)

// AvailabilityStore is the shared cache holding the snapshot and the time it was refreshed.
// Implementations must make each call individually atomic.
type AvailabilityStore interface {
	// GetSnapshot reports a miss as an infra KindNotFound error.
	GetSnapshot(ctx context.Context) (availability.Snapshot, error)
	SaveSnapshot(ctx context.Context, snap availability.Snapshot) error
	// GetLastRefresh returns (nil, nil) when nothing has been recorded.
	GetLastRefresh(ctx context.Context) (*time.Time, error)
	SaveLastRefresh(ctx context.Context, ts time.Time) error
}

// AvailabilityFetcher produces a fresh snapshot from the upstream scheduling source.
type AvailabilityFetcher interface {
	FetchAvailability(ctx context.Context) (availability.Snapshot, error)
}

// RefreshOutcome is what a completed refresh cycle wrote to the store.
type RefreshOutcome struct {
	Snapshot    availability.Snapshot
	RefreshedAt time.Time
}
