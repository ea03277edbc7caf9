//go:build unit || e2e

package builder

import (
	"time"

	reqdto "stock-reservation/internal/handler/dto/request"
	"stock-reservation/internal/usecase/commands"
)

type PurchaseBuilder struct {
	UserID      string
	ProductID   string
	VariantID   string
	WarehouseID string
	Quantity    int
	SessionID   string
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		UserID:    "user-1",
		ProductID: "sku-100",
		Quantity:  1,
		SessionID: "session-1",
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) BuildAttempt() commands.PurchaseAttempt {
	return commands.PurchaseAttempt{
		UserID:      b.UserID,
		ProductID:   b.ProductID,
		VariantID:   b.VariantID,
		WarehouseID: b.WarehouseID,
		Quantity:    b.Quantity,
		SessionID:   b.SessionID,
		Timestamp:   time.Now(),
	}
}

func (b *PurchaseBuilder) BuildRequestDTO() reqdto.PurchaseRequest {
	return reqdto.PurchaseRequest{
		UserID:      b.UserID,
		ProductID:   b.ProductID,
		VariantID:   b.VariantID,
		WarehouseID: b.WarehouseID,
		Quantity:    b.Quantity,
		SessionID:   b.SessionID,
	}
}
