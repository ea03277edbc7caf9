package api

import (
	"context"
	"log/slog"
	"net/http"

	"stock-reservation/internal/domain/reservation"
	reqdto "stock-reservation/internal/handler/dto/request"
	resdto "stock-reservation/internal/handler/dto/response"
	"stock-reservation/internal/handler/httperr"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/usecase/commands"
	"stock-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.PurchaseCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.PurchaseCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Commit reservation
// @Description Confirm an active reservation; its units leave current stock
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/commit [post]
func (h *ReservationHandler) Commit(c *gin.Context) {
	h.close(c, h.cmds.CommitReservation)
}

// @Summary Cancel reservation
// @Description Cancel an active reservation; its units return to available stock
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.close(c, h.cmds.CancelReservation)
}

// @Summary List user reservations
// @Description List reservations of a user, newest first, with keyset pagination
// @Tags reservations
// @Produce json
// @Param userId path string true "User ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{userId}/reservations [get]
func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	var cursor *queries.Cursor
	if q.After != "" {
		cursor = &queries.Cursor{After: q.After}
	}
	items, next, err := h.q.ListByUser(c.Request.Context(), userID, cursor, q.Limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		slog.Error("list reservations by user failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

func (h *ReservationHandler) close(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	res, err := op(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errs.Is(err, errs.ErrReservationNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is no longer active", nil)
		default:
			httperr.AbortRetryable(c, err, "Reservation could not be updated, try again")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}
