package response

import (
	"time"

	"stock-reservation/internal/usecase/queries"
)

type WarehouseStockResponse struct {
	WarehouseID    string    `json:"warehouseId"`
	CurrentStock   int       `json:"currentStock"`
	ReservedStock  int       `json:"reservedStock"`
	AvailableStock int       `json:"availableStock"`
	Version        int64     `json:"version"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type StockResponse struct {
	ProductID      string                    `json:"productId"`
	VariantID      string                    `json:"variantId,omitempty"`
	AvailableStock int                       `json:"availableStock"`
	Warehouses     []*WarehouseStockResponse `json:"warehouses"`
}

func FromStockViews(productID, variantID string, rows []*queries.StockView) *StockResponse {
	resp := &StockResponse{
		ProductID:  productID,
		VariantID:  variantID,
		Warehouses: make([]*WarehouseStockResponse, len(rows)),
	}
	for i, r := range rows {
		resp.AvailableStock += r.AvailableStock
		resp.Warehouses[i] = &WarehouseStockResponse{
			WarehouseID:    r.WarehouseID,
			CurrentStock:   r.CurrentStock,
			ReservedStock:  r.ReservedStock,
			AvailableStock: r.AvailableStock,
			Version:        r.Version,
			UpdatedAt:      r.UpdatedAt,
		}
	}
	return resp
}
