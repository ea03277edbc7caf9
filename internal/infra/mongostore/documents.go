package mongostore

import (
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// availableStock is stored next to the two counters so the warehouse fallback
// can sort on it; every update moves all three together.
type inventoryDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	ProductID      string             `bson:"productId"`
	VariantID      string             `bson:"variantId"`
	WarehouseID    string             `bson:"warehouseId"`
	CurrentStock   int                `bson:"currentStock"`
	ReservedStock  int                `bson:"reservedStock"`
	AvailableStock int                `bson:"availableStock"`
	Version        int64              `bson:"version"`
	IsActive       bool               `bson:"isActive"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

type reservationDocument struct {
	ID          string    `bson:"_id"`
	ProductID   string    `bson:"productId"`
	VariantID   string    `bson:"variantId"`
	WarehouseID string    `bson:"warehouseId"`
	UserID      string    `bson:"userId"`
	Quantity    int       `bson:"quantity"`
	Status      string    `bson:"status"`
	SessionID   string    `bson:"sessionId"`
	CreatedAt   time.Time `bson:"createdAt"`
	ExpiresAt   time.Time `bson:"expiresAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func keyFilter(key inventory.Key) bson.M {
	return bson.M{
		"productId":   key.ProductID,
		"variantId":   key.VariantID,
		"warehouseId": key.WarehouseID,
	}
}

func (d inventoryDocument) key() inventory.Key {
	return inventory.Key{
		ProductID:   d.ProductID,
		VariantID:   d.VariantID,
		WarehouseID: d.WarehouseID,
	}
}

func (d inventoryDocument) toDomain() *inventory.Item {
	return inventory.ReconstructItem(d.key(), d.CurrentStock, d.ReservedStock, d.Version, d.UpdatedAt)
}

func (d inventoryDocument) toView() *queries.StockView {
	return &queries.StockView{
		ProductID:      d.ProductID,
		VariantID:      d.VariantID,
		WarehouseID:    d.WarehouseID,
		CurrentStock:   d.CurrentStock,
		ReservedStock:  d.ReservedStock,
		AvailableStock: d.CurrentStock - d.ReservedStock,
		Version:        d.Version,
		UpdatedAt:      d.UpdatedAt,
	}
}

func newReservationDocument(res *reservation.Reservation) reservationDocument {
	key := res.Key()
	return reservationDocument{
		ID:          res.ID().String(),
		ProductID:   key.ProductID,
		VariantID:   key.VariantID,
		WarehouseID: key.WarehouseID,
		UserID:      res.UserID(),
		Quantity:    res.Quantity(),
		Status:      res.Status().String(),
		SessionID:   res.SessionID(),
		CreatedAt:   res.CreatedAt(),
		ExpiresAt:   res.ExpiresAt(),
		UpdatedAt:   res.UpdatedAt(),
	}
}

func (d reservationDocument) key() inventory.Key {
	return inventory.Key{
		ProductID:   d.ProductID,
		VariantID:   d.VariantID,
		WarehouseID: d.WarehouseID,
	}
}

func (d reservationDocument) toDomain() (*reservation.Reservation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		id,
		d.key(),
		d.UserID,
		d.Quantity,
		reservation.Status(d.Status),
		d.SessionID,
		d.CreatedAt,
		d.ExpiresAt,
		d.UpdatedAt,
	), nil
}

func (d reservationDocument) toView() (*queries.ReservationView, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &queries.ReservationView{
		ID:          id,
		ProductID:   d.ProductID,
		VariantID:   d.VariantID,
		WarehouseID: d.WarehouseID,
		UserID:      d.UserID,
		Quantity:    d.Quantity,
		Status:      d.Status,
		SessionID:   d.SessionID,
		CreatedAt:   d.CreatedAt,
		ExpiresAt:   d.ExpiresAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}
