package commands

//go:generate mockgen -source=refresh.go -destination=../../../tests/mock/commands/refresh.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"open-classrooms/internal/domain/availability"
	"open-classrooms/internal/pkg/clock"
	"open-classrooms/internal/pkg/config"
	"open-classrooms/internal/pkg/errs"
	"open-classrooms/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

var (
	ErrUpstreamUnavailable = errs.ErrUpstreamUnavailable
	ErrStoreUnavailable    = errs.ErrStoreUnavailable
	ErrCooldownActive      = errs.ErrCooldownActive
)

const refreshFlightKey = "refresh"

// CooldownError rejects a manual refresh requested too soon after the previous one.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("refresh cooldown active: %.1f minutes remaining", e.RemainingMinutes())
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldownActive
}

func (e *CooldownError) RemainingMinutes() float64 {
	return e.Remaining.Minutes()
}

type RefreshCommands interface {
	// Refresh fetches, then stores the snapshot, then the timestamp. Nothing is written when the
	// fetch fails.
	Refresh(ctx context.Context) (*shared.RefreshOutcome, error)
	// RequestRefresh is Refresh gated by the manual refresh cooldown.
	RequestRefresh(ctx context.Context) (*shared.RefreshOutcome, error)
	// RefreshOnWake refreshes when the cached data is from an earlier campus day and reports
	// whether it tried.
	RefreshOnWake(ctx context.Context) (bool, error)
}

type refreshCommandsImpl struct {
	store        shared.AvailabilityStore
	fetcher      shared.AvailabilityFetcher
	clock        clock.Clock
	loc          *time.Location
	cooldown     time.Duration
	fetchTimeout time.Duration
	logger       *slog.Logger
	flight       singleflight.Group
}

func NewRefreshCommands(store shared.AvailabilityStore, fetcher shared.AvailabilityFetcher, clk clock.Clock, cfg config.Config, logger *slog.Logger) (RefreshCommands, error) {
	loc, err := cfg.Cache.Location()
	if err != nil {
		return nil, err
	}
	return &refreshCommandsImpl{
		store:        store,
		fetcher:      fetcher,
		clock:        clk,
		loc:          loc,
		cooldown:     cfg.Cache.RefreshCooldown,
		fetchTimeout: cfg.Upstream.Timeout,
		logger:       logger,
	}, nil
}

// Concurrent callers in this process share one in-flight cycle. Other processes can still race
// us; the store keeps whichever write lands last.
func (uc *refreshCommandsImpl) Refresh(ctx context.Context) (*shared.RefreshOutcome, error) {
	v, err, joined := uc.flight.Do(refreshFlightKey, func() (any, error) {
		// a caller hanging up must not abort a cycle other callers are waiting on
		return uc.refresh(context.WithoutCancel(ctx))
	})
	if joined {
		uc.logger.Debug("Joined in-flight refresh")
	}
	if err != nil {
		return nil, err
	}
	return v.(*shared.RefreshOutcome), nil
}

func (uc *refreshCommandsImpl) refresh(ctx context.Context) (*shared.RefreshOutcome, error) {
	started := uc.clock.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancel()

	snap, err := uc.fetcher.FetchAvailability(fetchCtx)
	if err != nil {
		uc.logger.Error("Failed to fetch availability", "error", err)
		return nil, errs.Mark(errs.Wrap(err, "fetch availability"), ErrUpstreamUnavailable)
	}

	if err := uc.store.SaveSnapshot(ctx, snap); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "save snapshot"), ErrStoreUnavailable)
	}

	refreshedAt := uc.clock.Now().In(uc.loc)
	if err := uc.store.SaveLastRefresh(ctx, refreshedAt); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "save refresh timestamp"), ErrStoreUnavailable)
	}

	uc.logger.Info("Availability refreshed",
		"classrooms", len(snap),
		"refreshed_at", refreshedAt,
		"duration", refreshedAt.Sub(started))
	return &shared.RefreshOutcome{Snapshot: snap, RefreshedAt: refreshedAt}, nil
}

func (uc *refreshCommandsImpl) RequestRefresh(ctx context.Context) (*shared.RefreshOutcome, error) {
	last, err := shared.LoadLastRefresh(ctx, uc.store, uc.logger)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load refresh timestamp"), ErrStoreUnavailable)
	}

	decision := availability.CheckCooldown(last, uc.clock.Now(), uc.cooldown)
	if !decision.Allowed {
		return nil, &CooldownError{Remaining: decision.Remaining}
	}

	return uc.Refresh(ctx)
}

func (uc *refreshCommandsImpl) RefreshOnWake(ctx context.Context) (bool, error) {
	last, err := shared.LoadLastRefresh(ctx, uc.store, uc.logger)
	if err != nil {
		uc.logger.Warn("Could not read refresh timestamp on wake, refreshing anyway", "error", err)
		last = nil
	}

	if !availability.ShouldRefreshOnWake(last, uc.clock.Now(), uc.loc) {
		uc.logger.Info("Recent data available, skipping wake-up refresh", "last_refresh", last)
		return false, nil
	}

	uc.logger.Info("No data from today, running wake-up refresh")
	if _, err := uc.Refresh(ctx); err != nil {
		return true, err
	}
	return true, nil
}
