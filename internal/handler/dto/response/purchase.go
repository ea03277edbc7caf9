package response

import (
	"time"

	"stock-reservation/internal/usecase/commands"
	"stock-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseResponse struct {
	Success        bool       `json:"success"`
	ReservationID  *uuid.UUID `json:"reservationId,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	AvailableStock *int       `json:"availableStock,omitempty"`
	Error          string     `json:"error,omitempty"`
	Message        string     `json:"message"`
	Retryable      bool       `json:"retryable"`
}

func FromPurchaseResult(r *commands.PurchaseResult) *PurchaseResponse {
	resp := &PurchaseResponse{
		Success:        r.Success,
		ReservationID:  r.ReservationID,
		ExpiresAt:      r.ExpiresAt,
		AvailableStock: r.AvailableStock,
		Message:        r.Message,
	}
	if !r.Success {
		resp.Error = string(r.ErrorKind)
		resp.Retryable = r.ErrorKind.Retryable()
	}
	return resp
}

type PurchaseStatsResponse struct {
	TotalActiveProducts int            `json:"totalActiveProducts"`
	TotalActiveUsers    int            `json:"totalActiveUsers"`
	PerProductUserCount map[string]int `json:"perProductUserCount"`
}

func FromActivePurchaseStats(s queries.ActivePurchaseStats) *PurchaseStatsResponse {
	perProduct := s.PerProductUserCount
	if perProduct == nil {
		perProduct = map[string]int{}
	}
	return &PurchaseStatsResponse{
		TotalActiveProducts: s.TotalActiveProducts,
		TotalActiveUsers:    s.TotalActiveUsers,
		PerProductUserCount: perProduct,
	}
}

type ReclaimResponse struct {
	ReclaimedCount int64 `json:"reclaimedCount"`
}
