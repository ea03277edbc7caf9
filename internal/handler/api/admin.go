package api

import (
	"net/http"

	resdto "stock-reservation/internal/handler/dto/response"
	"stock-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reclaim commands.ReclaimCommands
}

func NewAdminHandler(reclaim commands.ReclaimCommands) *AdminHandler {
	return &AdminHandler{reclaim: reclaim}
}

// @Summary Reclaim expired reservations
// @Description Run one reclaim sweep now. A failed sweep reports zero.
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.ReclaimResponse
// @Router /admin/reclaim [post]
func (h *AdminHandler) Reclaim(c *gin.Context) {
	result := h.reclaim.ReclaimExpired(c.Request.Context())
	c.JSON(http.StatusOK, resdto.ReclaimResponse{ReclaimedCount: result.ReclaimedCount})
}
