//go:build unit || e2e

package builder

import (
	"time"

	"stock-reservation/internal/domain/inventory"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryBuilder struct {
	Key           inventory.Key
	CurrentStock  int
	ReservedStock int
	Version       int64
	UpdatedAt     time.Time
}

func NewInventoryBuilder() *InventoryBuilder {
	return &InventoryBuilder{
		Key:          inventory.Key{ProductID: "sku-100", WarehouseID: "wh-east"},
		CurrentStock: 10,
		Version:      1,
		UpdatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (b *InventoryBuilder) With(mutate func(*InventoryBuilder)) *InventoryBuilder {
	mutate(b)
	return b
}

func (b *InventoryBuilder) BuildDomain() *inventory.Item {
	return inventory.ReconstructItem(b.Key, b.CurrentStock, b.ReservedStock, b.Version, b.UpdatedAt)
}

func (b *InventoryBuilder) BuildInfra() sqlc.Inventory {
	ts := pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true}
	return sqlc.Inventory{
		ProductID:     b.Key.ProductID,
		VariantID:     b.Key.VariantID,
		WarehouseID:   b.Key.WarehouseID,
		CurrentStock:  int32(b.CurrentStock),
		ReservedStock: int32(b.ReservedStock),
		Version:       b.Version,
		IsActive:      true,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
}

func (b *InventoryBuilder) BuildView() *queries.StockView {
	return &queries.StockView{
		ProductID:      b.Key.ProductID,
		VariantID:      b.Key.VariantID,
		WarehouseID:    b.Key.WarehouseID,
		CurrentStock:   b.CurrentStock,
		ReservedStock:  b.ReservedStock,
		AvailableStock: b.CurrentStock - b.ReservedStock,
		Version:        b.Version,
		UpdatedAt:      b.UpdatedAt,
	}
}
