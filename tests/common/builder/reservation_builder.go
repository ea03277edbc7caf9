//go:build unit || e2e

package builder

import (
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/domain/reservation"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	Key       inventory.Key
	UserID    string
	Quantity  int
	Status    reservation.Status
	SessionID string
	CreatedAt time.Time
	TTL       time.Duration
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &ReservationBuilder{
		ID:        uuid.New(),
		Key:       inventory.Key{ProductID: "sku-100", WarehouseID: "wh-east"},
		UserID:    "user-1",
		Quantity:  1,
		Status:    reservation.StatusActive,
		SessionID: "session-1",
		CreatedAt: now,
		TTL:       reservation.DefaultTTL,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) ExpiresAt() time.Time {
	return b.CreatedAt.Add(b.TTL)
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID, b.Key, b.UserID, b.Quantity, b.Status, b.SessionID,
		b.CreatedAt, b.ExpiresAt(), b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservation {
	return sqlc.Reservation{
		ID:          b.ID,
		ProductID:   b.Key.ProductID,
		VariantID:   b.Key.VariantID,
		WarehouseID: b.Key.WarehouseID,
		UserID:      b.UserID,
		Quantity:    int32(b.Quantity),
		Status:      b.Status.String(),
		SessionID:   b.SessionID,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		ExpiresAt:   pgtype.Timestamptz{Time: b.ExpiresAt(), Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          b.ID,
		ProductID:   b.Key.ProductID,
		VariantID:   b.Key.VariantID,
		WarehouseID: b.Key.WarehouseID,
		UserID:      b.UserID,
		Quantity:    b.Quantity,
		Status:      b.Status.String(),
		SessionID:   b.SessionID,
		CreatedAt:   b.CreatedAt,
		ExpiresAt:   b.ExpiresAt(),
		UpdatedAt:   b.CreatedAt,
	}
}
