package repository

import (
	"context"
	"time"

	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/infra"
	"stock-reservation/internal/infra/repository/converter"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	CloseActiveReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CloseActiveReservationParams) (sqlc.Reservation, error)
	GetReservationStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (string, error)
	ReclaimExpiredReservations(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (sqlc.ReclaimExpiredReservationsRow, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params := converter.ReservationToInfra(res)

	if err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	return nil
}

// Close flips an active reservation to status. A reservation that exists but is
// no longer active is KindInvalidState; an unknown id is KindNotFound.
func (r *ReservationRepository) Close(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status, now time.Time) (*reservation.Reservation, error) {
	row, err := r.queries.CloseActiveReservation(ctx, tx, sqlc.CloseActiveReservationParams{
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(now),
		ID:        id,
	})
	if err == nil {
		return converter.ReservationFromInfra(row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to close reservation", err)
	}

	current, statusErr := r.queries.GetReservationStatus(ctx, tx, id)
	if statusErr != nil {
		if pgconv.IsNoRows(statusErr) {
			return nil, infra.WrapRepoErr("reservation not found", statusErr, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read reservation status", statusErr)
	}
	return nil, infra.WrapRepoErr("reservation is "+current, nil, infra.KindInvalidState)
}

func (r *ReservationRepository) ReclaimExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	row, err := r.queries.ReclaimExpiredReservations(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reclaim expired reservations", err)
	}

	return row.Reclaimed, nil
}
