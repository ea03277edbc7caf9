package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   string    `json:"product_id"`
	VariantID   string    `json:"variant_id,omitempty"`
	WarehouseID string    `json:"warehouse_id"`
	UserID      string    `json:"user_id"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	SessionID   string    `json:"session_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockView is one warehouse row of a product (variant)
type StockView struct {
	ProductID      string    `json:"product_id"`
	VariantID      string    `json:"variant_id,omitempty"`
	WarehouseID    string    `json:"warehouse_id"`
	CurrentStock   int       `json:"current_stock"`
	ReservedStock  int       `json:"reserved_stock"`
	AvailableStock int       `json:"available_stock"`
	Version        int64     `json:"version"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ActivePurchaseStats struct {
	TotalActiveProducts int            `json:"total_active_products"`
	TotalActiveUsers    int            `json:"total_active_users"`
	PerProductUserCount map[string]int `json:"per_product_user_count"`
}
