package bootstrap

import (
	"context"
	"log/slog"

	"stock-reservation/internal/pkg/config"
	"stock-reservation/internal/pkg/metrics"
	"stock-reservation/internal/pkg/tracing"

	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		metrics.New,
		NewTracing,
	),
	fx.Invoke(func(*tracing.Provider) {}),
)

func NewTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*tracing.Provider, error) {
	provider, err := tracing.Initialize(context.Background(), cfg.Tracing)
	if err != nil {
		return nil, err
	}
	if cfg.Tracing.Enabled {
		logger.Info("tracing enabled", "endpoint", cfg.Tracing.OTLPEndpoint, "sample_rate", cfg.Tracing.SampleRate)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
