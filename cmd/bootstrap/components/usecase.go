package components

import (
	"log/slog"

	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/pkg/clock"
	"stock-reservation/internal/pkg/config"
	"stock-reservation/internal/pkg/metrics"
	"stock-reservation/internal/usecase/commands"
	"stock-reservation/internal/usecase/guard"
	"stock-reservation/internal/usecase/queries"
	"stock-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	guard.NewRegistry,
	func(c clock.Clock, cfg config.Config) *reservation.Factory {
		return reservation.NewFactory(c, cfg.Reservation.TTL)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			store shared.StockStore,
			registry *guard.Registry,
			factory *reservation.Factory,
			c clock.Clock,
			cfg config.Config,
			logger *slog.Logger,
			m *metrics.Metrics,
		) commands.PurchaseCommands {
			return commands.NewPurchaseUseCase(store, registry, factory, c, cfg.Reservation.MaxQuantity, logger, m)
		},
		commands.NewReclaimUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewInventoryQueries,
		queries.NewStatsQueries,
	),
)
