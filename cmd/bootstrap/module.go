package bootstrap

import (
	"open-classrooms/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	RedisModule,
	CatalogModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
