package components

import (
	"context"
	"log/slog"

	"stock-reservation/internal/infra/mongostore"
	"stock-reservation/internal/infra/readstore"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/infra/uow"
	"stock-reservation/internal/usecase/queries"
	"stock-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

// Stores is the backend-specific half of the graph. Exactly one backend fills it.
type Stores struct {
	fx.Out

	Stock        shared.StockStore
	Reservations queries.ReservationViewRepo
	Inventory    queries.InventoryViewRepo
}

func NewPostgresStores(pool *pgxpool.Pool, logger *slog.Logger) Stores {
	q := sqlc.New()
	return Stores{
		Stock:        uow.NewPostgresStore(pool, q, logger),
		Reservations: readstore.NewReservationReadStore(q, pool),
		Inventory:    readstore.NewInventoryReadStore(q, pool),
	}
}

func NewMongoStores(ctx context.Context, db *mongo.Database, logger *slog.Logger) (Stores, error) {
	store, err := mongostore.NewMongoStore(ctx, db, logger)
	if err != nil {
		return Stores{}, err
	}
	rs := mongostore.NewReadStore(db)
	return Stores{
		Stock:        store,
		Reservations: rs,
		Inventory:    rs,
	}, nil
}
