package bootstrap

import (
	"context"
	"log/slog"

	"stock-reservation/cmd/bootstrap/components"
	"stock-reservation/internal/infra/db"
	"stock-reservation/internal/infra/mongostore"
	"stock-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewStores,
	),
)

// NewStores connects only the configured backend and ties its client to the app lifecycle.
func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (components.Stores, error) {
	ctx := context.Background()

	switch cfg.Store.Backend {
	case config.BackendMongo:
		client, disconnect, err := mongostore.Connect(ctx, cfg.Mongo)
		if err != nil {
			return components.Stores{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return disconnect(ctx)
			},
		})
		logger.Info("inventory backend selected", "backend", config.BackendMongo, "database", cfg.Mongo.Database)
		return components.NewMongoStores(ctx, client.Database(cfg.Mongo.Database), logger)

	default:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return components.Stores{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})
		logger.Info("inventory backend selected", "backend", config.BackendPostgres, "database", cfg.DB.DBName)
		return components.NewPostgresStores(pool, logger), nil
	}
}
