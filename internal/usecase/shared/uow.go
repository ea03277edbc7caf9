package shared

import (
	"context"
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// StockStore is the inventory backend seen by the usecases. The relational and the
// document implementation are picked once at startup.
//
// Errors crossing this boundary are marked with inventory.ErrItemNotFound,
// inventory.ErrContention, errs.ErrReservationNotFound or errs.ErrReservationNotActive
// when they mean one of those; anything else is a store failure.
type StockStore interface {
	// Within: one atomic unit; everything fn writes commits together or not at all
	Within(ctx context.Context, fn func(ctx context.Context, tx StockTx) error) error
	// ReclaimExpired: expires every active reservation with expiresAt < now and hands
	// its quantity back in the same atomic unit; returns how many it expired
	ReclaimExpired(ctx context.Context, now time.Time) (int64, error)
	Backend() string
}

type StockTx interface {
	// AcquireForUpdate returns the row for key, locked or version-observed. An empty
	// WarehouseID selects the row with the most available stock.
	AcquireForUpdate(ctx context.Context, key inventory.Key) (*inventory.Item, error)
	// ApplyReservation inserts res and raises reservedStock on the row observed by
	// AcquireForUpdate, returning the row after the update.
	ApplyReservation(ctx context.Context, item *inventory.Item, res *reservation.Reservation) (*inventory.Item, error)
	// CloseReservation moves an active reservation to a terminal status and releases
	// its hold exactly once.
	CloseReservation(ctx context.Context, id uuid.UUID, to reservation.Status, now time.Time) (*reservation.Reservation, error)
}
