package repository

import (
	"context"
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/infra"
	"stock-reservation/internal/infra/repository/converter"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/pkg/pgconv"
)

type InventoryWriteQueries interface {
	LockInventoryItem(ctx context.Context, db sqlc.DBTX, arg sqlc.LockInventoryItemParams) (sqlc.Inventory, error)
	LockBestInventoryItem(ctx context.Context, db sqlc.DBTX, arg sqlc.LockBestInventoryItemParams) (sqlc.Inventory, error)
	IncrementReservedStock(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementReservedStockParams) (sqlc.Inventory, error)
	ReleaseReservedStock(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseReservedStockParams) (sqlc.Inventory, error)
}

type InventoryRepository struct {
	queries InventoryWriteQueries
}

func NewInventoryRepository(queries InventoryWriteQueries) *InventoryRepository {
	return &InventoryRepository{queries: queries}
}

// LockForUpdate takes the row lock with NOWAIT. A row held by another transaction
// comes back as KindContention, a missing or inactive row as KindNotFound.
func (r *InventoryRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, key inventory.Key) (*inventory.Item, error) {
	var (
		row sqlc.Inventory
		err error
	)
	if key.HasWarehouse() {
		row, err = r.queries.LockInventoryItem(ctx, tx, sqlc.LockInventoryItemParams{
			ProductID:   key.ProductID,
			VariantID:   key.VariantID,
			WarehouseID: key.WarehouseID,
		})
	} else {
		row, err = r.queries.LockBestInventoryItem(ctx, tx, sqlc.LockBestInventoryItemParams{
			ProductID: key.ProductID,
			VariantID: key.VariantID,
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock inventory item "+key.String(), err)
	}

	return converter.ItemFromInfra(row), nil
}

func (r *InventoryRepository) Reserve(ctx context.Context, tx sqlc.DBTX, key inventory.Key, quantity int, now time.Time) (*inventory.Item, error) {
	row, err := r.queries.IncrementReservedStock(ctx, tx, sqlc.IncrementReservedStockParams{
		Quantity:    converter.ToInt32(quantity),
		UpdatedAt:   pgconv.TimeToPgtype(now),
		ProductID:   key.ProductID,
		VariantID:   key.VariantID,
		WarehouseID: key.WarehouseID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to increment reserved stock", err)
	}

	return converter.ItemFromInfra(row), nil
}

// Release lowers reservedStock by quantity; consume also takes it out of currentStock.
func (r *InventoryRepository) Release(ctx context.Context, tx sqlc.DBTX, key inventory.Key, quantity int, consume bool, now time.Time) (*inventory.Item, error) {
	consumed := 0
	if consume {
		consumed = quantity
	}

	row, err := r.queries.ReleaseReservedStock(ctx, tx, sqlc.ReleaseReservedStockParams{
		Quantity:    converter.ToInt32(quantity),
		Consumed:    converter.ToInt32(consumed),
		UpdatedAt:   pgconv.TimeToPgtype(now),
		ProductID:   key.ProductID,
		VariantID:   key.VariantID,
		WarehouseID: key.WarehouseID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to release reserved stock", err)
	}

	return converter.ItemFromInfra(row), nil
}
