package readstore

import (
	"context"

	"stock-reservation/internal/infra"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/pkg/pgconv"
	"stock-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	GetReservationsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationsByUserFirstPageParams) ([]sqlc.Reservation, error)
	GetReservationsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationsByUserKeysetParams) ([]sqlc.Reservation, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("reservation not found", err, infra.KindNotFound), errs.ErrReservationNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationView(row), nil
}

func (r *ReservationReadStore) FindByUser(ctx context.Context, userID string, after *queries.Position, limit int) ([]*queries.ReservationView, error) {
	var (
		rows []sqlc.Reservation
		err  error
	)
	if after == nil {
		rows, err = r.queries.GetReservationsByUserFirstPage(ctx, r.db, sqlc.GetReservationsByUserFirstPageParams{
			UserID: userID,
			Limit:  int32(limit), // #nosec G115 -- bounded by queries.ValidateLimit
		})
	} else {
		rows, err = r.queries.GetReservationsByUserKeyset(ctx, r.db, sqlc.GetReservationsByUserKeysetParams{
			UserID:    userID,
			CreatedAt: pgconv.TimeToPgtype(after.CreatedAt),
			ID:        after.ID,
			PageSize:  int32(limit), // #nosec G115 -- bounded by queries.ValidateLimit
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result, nil
}

func toReservationView(row sqlc.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          row.ID,
		ProductID:   row.ProductID,
		VariantID:   row.VariantID,
		WarehouseID: row.WarehouseID,
		UserID:      row.UserID,
		Quantity:    int(row.Quantity),
		Status:      row.Status,
		SessionID:   row.SessionID,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
