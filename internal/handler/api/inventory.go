package api

import (
	"net/http"

	"stock-reservation/internal/domain/inventory"
	resdto "stock-reservation/internal/handler/dto/response"
	"stock-reservation/internal/handler/httperr"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	q queries.InventoryQueries
}

func NewInventoryHandler(q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{q: q}
}

// @Summary Get stock
// @Description Per-warehouse stock of a product variant
// @Tags inventory
// @Produce json
// @Param productId path string true "Product ID"
// @Param variantId query string false "Variant ID"
// @Success 200 {object} resdto.StockResponse
// @Failure 404 {object} map[string]string
// @Router /inventory/{productId} [get]
func (h *InventoryHandler) GetStock(c *gin.Context) {
	productID := c.Param("productId")
	variantID := c.Query("variantId")

	rows, err := h.q.GetStock(c.Request.Context(), productID, variantID)
	if err != nil {
		if errs.Is(err, inventory.ErrItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockViews(productID, variantID, rows))
}
