package api

import (
	"net/http"
	"time"

	reqdto "stock-reservation/internal/handler/dto/request"
	resdto "stock-reservation/internal/handler/dto/response"
	"stock-reservation/internal/handler/httperr"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/usecase/commands"
	"stock-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	cmds  commands.PurchaseCommands
	stats queries.StatsQueries
}

func NewPurchaseHandler(cmds commands.PurchaseCommands, stats queries.StatsQueries) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds, stats: stats}
}

// @Summary Attempt purchase
// @Description Reserve stock for a user. Every outcome is reported in the body; the status code mirrors the error kind.
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body reqdto.PurchaseRequest true "Purchase attempt"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} resdto.PurchaseResponse
// @Failure 409 {object} resdto.PurchaseResponse
// @Failure 503 {object} resdto.PurchaseResponse
// @Router /purchases [post]
func (h *PurchaseHandler) AttemptPurchase(c *gin.Context) {
	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.AttemptPurchase(c.Request.Context(), req.ToAttempt(time.Now()))
	if err != nil {
		if errs.Is(err, errs.ErrInvalidPurchaseAttempt) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid purchase attempt", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if !result.Success && result.ErrorKind.Retryable() {
		httperr.SetRetryAfter(c)
	}
	c.JSON(purchaseStatus(result), resdto.FromPurchaseResult(result))
}

// @Summary Active purchase stats
// @Description Snapshot of in-flight purchase attempts on this instance
// @Tags purchases
// @Produce json
// @Success 200 {object} resdto.PurchaseStatsResponse
// @Router /purchases/stats [get]
func (h *PurchaseHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromActivePurchaseStats(h.stats.GetActivePurchaseStats()))
}

func purchaseStatus(r *commands.PurchaseResult) int {
	if r.Success {
		return http.StatusCreated
	}
	switch r.ErrorKind {
	case commands.KindProductNotFound:
		return http.StatusNotFound
	case commands.KindDuplicatePurchaseAttempt, commands.KindOutOfStock, commands.KindInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}
