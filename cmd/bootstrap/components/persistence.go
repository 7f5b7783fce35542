package components

import (
	"open-classrooms/internal/handler/api"
	"open-classrooms/internal/infra/cache"
	"open-classrooms/internal/infra/upstream"
	"open-classrooms/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	storeModule,
	upstreamModule,
)

var storeModule = fx.Module("persistence/store",
	fx.Provide(
		fx.Annotate(
			cache.NewRedisStore,
			fx.As(new(shared.AvailabilityStore)),
			fx.As(new(api.Pinger)),
		),
	),
)

var upstreamModule = fx.Module("persistence/upstream",
	fx.Provide(
		fx.Annotate(
			upstream.NewClient,
			fx.As(new(shared.AvailabilityFetcher)),
		),
	),
)
