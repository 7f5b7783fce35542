package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"log/slog"
	"time"

	"open-classrooms/internal/domain/availability"
	"open-classrooms/internal/domain/catalog"
	"open-classrooms/internal/infra"
	"open-classrooms/internal/pkg/clock"
	"open-classrooms/internal/pkg/config"
	"open-classrooms/internal/pkg/errs"
	"open-classrooms/internal/usecase/shared"
)

var ErrStoreUnavailable = errs.ErrStoreUnavailable

type ClassroomView struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Availability []availability.Slot `json:"availability"`
}

type BuildingView struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Classrooms []ClassroomView `json:"classrooms"`
}

// OpenClassrooms is the building-grouped availability served to clients.
type OpenClassrooms struct {
	Buildings   map[string]BuildingView
	LastUpdated *time.Time
}

type CooldownStatus struct {
	InCooldown       bool
	RemainingMinutes float64
}

type AvailabilityQueries interface {
	// GetAvailability serves the cached snapshot, filling the cache first when it is empty.
	GetAvailability(ctx context.Context) (*OpenClassrooms, error)
	GetLastUpdated(ctx context.Context) (*time.Time, error)
	GetCooldownStatus(ctx context.Context) (*CooldownStatus, error)
}

type availabilityQueriesImpl struct {
	store     shared.AvailabilityStore
	refresher shared.Refresher
	catalog   *catalog.Catalog
	clock     clock.Clock
	cooldown  time.Duration
	logger    *slog.Logger
}

func NewAvailabilityQueries(store shared.AvailabilityStore, refresher shared.Refresher, cat *catalog.Catalog, clk clock.Clock, cfg config.Config, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:     store,
		refresher: refresher,
		catalog:   cat,
		clock:     clk,
		cooldown:  cfg.Cache.RefreshCooldown,
		logger:    logger,
	}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context) (*OpenClassrooms, error) {
	snap, err := q.store.GetSnapshot(ctx)
	switch {
	case err == nil:
		q.logger.Debug("Cache hit")
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindMalformed):
		// Filling an empty cache is not a manual refresh, so the cooldown does not apply.
		q.logger.Info("Cache miss - fetching new data")
		outcome, rerr := q.refresher.Refresh(ctx)
		if rerr != nil {
			return nil, rerr
		}
		snap = outcome.Snapshot
	default:
		return nil, errs.Mark(errs.Wrap(err, "get snapshot"), ErrStoreUnavailable)
	}

	last, err := shared.LoadLastRefresh(ctx, q.store, q.logger)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load refresh timestamp"), ErrStoreUnavailable)
	}

	return &OpenClassrooms{
		Buildings:   GroupByBuilding(q.catalog, snap),
		LastUpdated: last,
	}, nil
}

func (q *availabilityQueriesImpl) GetLastUpdated(ctx context.Context) (*time.Time, error) {
	last, err := shared.LoadLastRefresh(ctx, q.store, q.logger)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load refresh timestamp"), ErrStoreUnavailable)
	}
	return last, nil
}

func (q *availabilityQueriesImpl) GetCooldownStatus(ctx context.Context) (*CooldownStatus, error) {
	last, err := shared.LoadLastRefresh(ctx, q.store, q.logger)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load refresh timestamp"), ErrStoreUnavailable)
	}

	decision := availability.CheckCooldown(last, q.clock.Now(), q.cooldown)
	return &CooldownStatus{
		InCooldown:       !decision.Allowed,
		RemainingMinutes: decision.RemainingMinutes(),
	}, nil
}
