package bootstrap

import (
	"context"
	"log/slog"

	"stock-reservation/internal/pkg/config"
	"stock-reservation/internal/usecase/commands"
	"stock-reservation/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cmds commands.ReclaimCommands, logger *slog.Logger, cfg config.Config) *worker.Reclaimer {
			return worker.NewReclaimer(cmds, logger, cfg.Reservation)
		},
	),
	fx.Invoke(registerReclaimer),
)

// The start hook's context expires with the start timeout, so the loop gets its own.
func registerReclaimer(lc fx.Lifecycle, r *worker.Reclaimer) {
	runCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return r.Start(runCtx)
		},
		OnStop: func(_ context.Context) error {
			defer cancel()
			return r.Stop()
		},
	})
}
