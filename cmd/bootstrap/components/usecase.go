package components

import (
	"open-classrooms/internal/pkg/clock"
	"open-classrooms/internal/usecase/commands"
	"open-classrooms/internal/usecase/queries"
	"open-classrooms/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRefreshCommands,
		// read paths fill an empty cache through the same coalesced refresh
		func(cmds commands.RefreshCommands) shared.Refresher {
			return cmds
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
	),
)
