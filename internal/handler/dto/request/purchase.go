package request

import (
	"strings"
	"time"

	"stock-reservation/internal/usecase/commands"
)

type PurchaseRequest struct {
	UserID      string `json:"userId" binding:"required"`
	ProductID   string `json:"productId" binding:"required"`
	VariantID   string `json:"variantId,omitempty"`
	WarehouseID string `json:"warehouseId,omitempty"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	SessionID   string `json:"sessionId,omitempty"`
}

func (r PurchaseRequest) ToAttempt(now time.Time) commands.PurchaseAttempt {
	return commands.PurchaseAttempt{
		UserID:      strings.TrimSpace(r.UserID),
		ProductID:   strings.TrimSpace(r.ProductID),
		VariantID:   strings.TrimSpace(r.VariantID),
		WarehouseID: strings.TrimSpace(r.WarehouseID),
		Quantity:    r.Quantity,
		SessionID:   r.SessionID,
		Timestamp:   now,
	}
}
