//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/handler/api"
	resdto "stock-reservation/internal/handler/dto/response"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/usecase/queries"
	"stock-reservation/tests/common/builder"
	"stock-reservation/tests/common/httptest"
	queriesmock "stock-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupInventoryRouter(t *testing.T) (*gin.Engine, *queriesmock.MockInventoryQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockQueries := queriesmock.NewMockInventoryQueries(ctrl)

	router := gin.New()
	router.GET("/inventory/:productId", api.NewInventoryHandler(mockQueries).GetStock)
	return router, mockQueries
}

func TestInventoryHandler_GetStock(t *testing.T) {
	east := builder.NewInventoryBuilder().With(func(b *builder.InventoryBuilder) {
		b.Key.VariantID = "red"
		b.ReservedStock = 3
	}).BuildView()
	west := builder.NewInventoryBuilder().With(func(b *builder.InventoryBuilder) {
		b.Key.VariantID = "red"
		b.Key.WarehouseID = "wh-west"
		b.CurrentStock = 5
	}).BuildView()

	t.Run("success: sums available stock across warehouses", func(t *testing.T) {
		router, mockQueries := setupInventoryRouter(t)
		mockQueries.EXPECT().GetStock(gomock.Any(), "sku-100", "red").
			Return([]*queries.StockView{east, west}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/inventory/sku-100?variantId=red", nil, nil)

		var body resdto.StockResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "sku-100", body.ProductID)
		assert.Equal(t, "red", body.VariantID)
		assert.Equal(t, 12, body.AvailableStock)
		assert.Len(t, body.Warehouses, 2)
	})

	t.Run("error: 404 for unknown product", func(t *testing.T) {
		router, mockQueries := setupInventoryRouter(t)
		mockQueries.EXPECT().GetStock(gomock.Any(), "missing", "").
			Return(nil, errs.Mark(errors.New("no rows"), inventory.ErrItemNotFound))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/inventory/missing", nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Product not found")
	})

	t.Run("error: 500 on read failure", func(t *testing.T) {
		router, mockQueries := setupInventoryRouter(t)
		mockQueries.EXPECT().GetStock(gomock.Any(), "sku-100", "").Return(nil, errors.New("pool closed"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/inventory/sku-100", nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "")
	})
}
