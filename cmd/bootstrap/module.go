package bootstrap

import (
	"stock-reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ObservabilityModule,
	DBModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
