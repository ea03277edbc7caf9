package readstore

import (
	"context"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/infra"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/pkg/pgconv"
	"stock-reservation/internal/usecase/queries"
)

type InventoryViewQueries interface {
	ListInventoryByProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInventoryByProductParams) ([]sqlc.Inventory, error)
}

type InventoryReadStore struct {
	queries InventoryViewQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryViewQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByProduct reports KindNotFound when no active warehouse row exists.
func (r *InventoryReadStore) FindByProduct(ctx context.Context, productID, variantID string) ([]*queries.StockView, error) {
	rows, err := r.queries.ListInventoryByProduct(ctx, r.db, sqlc.ListInventoryByProductParams{
		ProductID: productID,
		VariantID: variantID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory by product", err)
	}
	if len(rows) == 0 {
		return nil, errs.Mark(infra.WrapRepoErr("inventory not found for "+productID, nil, infra.KindNotFound), inventory.ErrItemNotFound)
	}

	result := make([]*queries.StockView, len(rows))
	for i, row := range rows {
		result[i] = &queries.StockView{
			ProductID:      row.ProductID,
			VariantID:      row.VariantID,
			WarehouseID:    row.WarehouseID,
			CurrentStock:   int(row.CurrentStock),
			ReservedStock:  int(row.ReservedStock),
			AvailableStock: int(row.CurrentStock - row.ReservedStock),
			Version:        row.Version,
			UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}
