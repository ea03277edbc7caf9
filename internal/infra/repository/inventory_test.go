//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/infra"
	"stock-reservation/internal/infra/repository"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/pkg/pgconv"
	"stock-reservation/tests/common/builder"
	repositorymock "stock-reservation/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// LockForUpdate Tests
// =============================================================================

func TestInventoryRepository_LockForUpdate(t *testing.T) {
	ctx := context.Background()
	row := builder.NewInventoryBuilder().BuildInfra()

	testCases := []struct {
		name       string
		key        inventory.Key
		setupMock  func(*repositorymock.MockInventoryWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: explicit warehouse locks that row",
			key:  inventory.Key{ProductID: "sku-100", WarehouseID: "wh-east"},
			setupMock: func(m *repositorymock.MockInventoryWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().LockInventoryItem(ctx, tx, sqlc.LockInventoryItemParams{
					ProductID:   "sku-100",
					WarehouseID: "wh-east",
				}).Return(row, nil)
			},
		},
		{
			name: "success: no warehouse picks the best row",
			key:  inventory.Key{ProductID: "sku-100"},
			setupMock: func(m *repositorymock.MockInventoryWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().LockBestInventoryItem(ctx, tx, sqlc.LockBestInventoryItemParams{ProductID: "sku-100"}).Return(row, nil)
			},
		},
		{
			name: "error: NOWAIT failure is contention",
			key:  inventory.Key{ProductID: "sku-100", WarehouseID: "wh-east"},
			setupMock: func(m *repositorymock.MockInventoryWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().LockInventoryItem(ctx, tx, gomock.Any()).Return(sqlc.Inventory{}, errLockNotAvailable)
			},
			expectKind: infra.KindContention,
		},
		{
			name: "error: no row is not found",
			key:  inventory.Key{ProductID: "missing"},
			setupMock: func(m *repositorymock.MockInventoryWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().LockBestInventoryItem(ctx, tx, gomock.Any()).Return(sqlc.Inventory{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: anything else is a db failure",
			key:  inventory.Key{ProductID: "sku-100", WarehouseID: "wh-east"},
			setupMock: func(m *repositorymock.MockInventoryWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().LockInventoryItem(ctx, tx, gomock.Any()).Return(sqlc.Inventory{}, errors.New("conn closed"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewInventoryRepository(mockQueries)
			tc.setupMock(mockQueries, mockDB)

			item, err := repo.LockForUpdate(ctx, mockDB, tc.key)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, item)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "wh-east", item.Key().WarehouseID)
			assert.Equal(t, int(row.CurrentStock-row.ReservedStock), item.Available())
		})
	}
}

// =============================================================================
// Reserve / Release Tests
// =============================================================================

func TestInventoryRepository_Reserve(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	key := inventory.Key{ProductID: "sku-100", VariantID: "red", WarehouseID: "wh-east"}

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
	mockDB := &mockDBTX{}

	after := builder.NewInventoryBuilder().With(func(b *builder.InventoryBuilder) {
		b.Key = key
		b.ReservedStock = 3
		b.Version = 2
	}).BuildInfra()

	mockQueries.EXPECT().IncrementReservedStock(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.IncrementReservedStockParams) (sqlc.Inventory, error) {
			assert.Equal(t, int32(3), arg.Quantity)
			assert.Equal(t, "red", arg.VariantID)
			assert.Equal(t, "wh-east", arg.WarehouseID)
			assert.True(t, arg.UpdatedAt.Time.Equal(now))
			return after, nil
		})

	item, err := repository.NewInventoryRepository(mockQueries).Reserve(ctx, mockDB, key, 3, now)
	require.NoError(t, err)
	assert.Equal(t, 3, item.ReservedStock())
	assert.Equal(t, int64(2), item.Version())
}

func TestInventoryRepository_Release(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	key := inventory.Key{ProductID: "sku-100", WarehouseID: "wh-east"}

	testCases := []struct {
		name         string
		consume      bool
		wantConsumed int32
	}{
		{name: "cancel keeps current stock", consume: false, wantConsumed: 0},
		{name: "commit consumes current stock", consume: true, wantConsumed: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			mockQueries.EXPECT().ReleaseReservedStock(ctx, mockDB, sqlc.ReleaseReservedStockParams{
				Quantity:    4,
				Consumed:    tc.wantConsumed,
				UpdatedAt:   pgconv.TimeToPgtype(now),
				ProductID:   key.ProductID,
				WarehouseID: key.WarehouseID,
			}).Return(builder.NewInventoryBuilder().BuildInfra(), nil)

			_, err := repository.NewInventoryRepository(mockQueries).Release(ctx, mockDB, key, 4, tc.consume, now)
			assert.NoError(t, err)
		})
	}

	t.Run("missing row is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ReleaseReservedStock(ctx, mockDB, gomock.Any()).Return(sqlc.Inventory{}, pgx.ErrNoRows)

		_, err := repository.NewInventoryRepository(mockQueries).Release(ctx, mockDB, key, 1, false, now)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
