package converter

import (
	"stock-reservation/internal/domain/inventory"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/pkg/pgconv"
)

func ItemFromInfra(row sqlc.Inventory) *inventory.Item {
	return inventory.ReconstructItem(
		KeyFromInfra(row),
		int(row.CurrentStock),
		int(row.ReservedStock),
		row.Version,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func KeyFromInfra(row sqlc.Inventory) inventory.Key {
	return inventory.Key{
		ProductID:   row.ProductID,
		VariantID:   row.VariantID,
		WarehouseID: row.WarehouseID,
	}
}
