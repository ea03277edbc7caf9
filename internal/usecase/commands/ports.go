package commands

import (
	"time"

	"stock-reservation/internal/domain/inventory"

	"github.com/google/uuid"
)

type ErrorKind string

const (
	KindDuplicatePurchaseAttempt ErrorKind = "DUPLICATE_PURCHASE_ATTEMPT"
	KindProductNotFound          ErrorKind = "PRODUCT_NOT_FOUND"
	KindOutOfStock               ErrorKind = "OUT_OF_STOCK"
	KindInsufficientStock        ErrorKind = "INSUFFICIENT_STOCK"
	KindSystemError              ErrorKind = "SYSTEM_ERROR"
)

// Retryable reports whether the same attempt may succeed later without changes.
func (k ErrorKind) Retryable() bool {
	return k == KindDuplicatePurchaseAttempt || k == KindSystemError
}

type PurchaseAttempt struct {
	UserID      string
	ProductID   string
	VariantID   string
	WarehouseID string
	Quantity    int
	SessionID   string
	Timestamp   time.Time
}

func (a PurchaseAttempt) Key() inventory.Key {
	return inventory.Key{
		ProductID:   a.ProductID,
		VariantID:   a.VariantID,
		WarehouseID: a.WarehouseID,
	}
}

type PurchaseResult struct {
	Success        bool
	ReservationID  *uuid.UUID
	ExpiresAt      *time.Time
	AvailableStock *int
	ErrorKind      ErrorKind
	Message        string
}

type ReclaimResult struct {
	ReclaimedCount int64
}
