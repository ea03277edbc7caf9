package converter

import (
	"fmt"
	"math"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/domain/reservation"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	key := res.Key()
	return sqlc.CreateReservationParams{
		ID:          res.ID(),
		ProductID:   key.ProductID,
		VariantID:   key.VariantID,
		WarehouseID: key.WarehouseID,
		UserID:      res.UserID(),
		Quantity:    ToInt32(res.Quantity()),
		Status:      res.Status().String(),
		SessionID:   res.SessionID(),
		CreatedAt:   pgconv.TimeToPgtype(res.CreatedAt()),
		ExpiresAt:   pgconv.TimeToPgtype(res.ExpiresAt()),
		UpdatedAt:   pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromInfra(row sqlc.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		inventory.Key{
			ProductID:   row.ProductID,
			VariantID:   row.VariantID,
			WarehouseID: row.WarehouseID,
		},
		row.UserID,
		int(row.Quantity),
		reservation.Status(row.Status),
		row.SessionID,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

// ToInt32 panics on overflow; quantities are bounded by config long before that.
func ToInt32(n int) int32 {
	if n > math.MaxInt32 || n < math.MinInt32 {
		panic(fmt.Sprintf("value out of int32 range: %d", n))
	}
	return int32(n)
}
