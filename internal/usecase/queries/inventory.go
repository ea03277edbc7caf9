package queries

import "context"

type InventoryQueries interface {
	GetStock(ctx context.Context, productID, variantID string) ([]*StockView, error)
}

type InventoryViewRepo interface {
	FindByProduct(ctx context.Context, productID, variantID string) ([]*StockView, error)
}

type inventoryQueriesImpl struct {
	repo InventoryViewRepo
}

func NewInventoryQueries(repo InventoryViewRepo) InventoryQueries {
	return &inventoryQueriesImpl{repo: repo}
}

func (q *inventoryQueriesImpl) GetStock(ctx context.Context, productID, variantID string) ([]*StockView, error) {
	return q.repo.FindByProduct(ctx, productID, variantID)
}
