package components

import (
	"open-classrooms/internal/handler"
	"open-classrooms/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewRefreshHandler,
		api.NewAvailabilityHandler,
	),
	fx.Invoke(handler.NewRouter),
)
