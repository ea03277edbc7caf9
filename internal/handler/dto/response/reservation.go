package response

import (
	"time"

	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   string    `json:"productId"`
	VariantID   string    `json:"variantId,omitempty"`
	WarehouseID string    `json:"warehouseId"`
	UserID      string    `json:"userId"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	SessionID   string    `json:"sessionId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	NextCursor   string                 `json:"nextCursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:          v.ID,
		ProductID:   v.ProductID,
		VariantID:   v.VariantID,
		WarehouseID: v.WarehouseID,
		UserID:      v.UserID,
		Quantity:    v.Quantity,
		Status:      v.Status,
		SessionID:   v.SessionID,
		CreatedAt:   v.CreatedAt,
		ExpiresAt:   v.ExpiresAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	key := r.Key()
	return &ReservationResponse{
		ID:          r.ID(),
		ProductID:   key.ProductID,
		VariantID:   key.VariantID,
		WarehouseID: key.WarehouseID,
		UserID:      r.UserID(),
		Quantity:    r.Quantity(),
		Status:      r.Status().String(),
		SessionID:   r.SessionID(),
		CreatedAt:   r.CreatedAt(),
		ExpiresAt:   r.ExpiresAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func FromReservationList(items []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]*ReservationResponse, len(items)),
	}
	for i, v := range items {
		resp.Reservations[i] = FromReservationView(v)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
