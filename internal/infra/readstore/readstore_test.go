//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/infra"
	"stock-reservation/internal/infra/readstore"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/pkg/pgconv"
	"stock-reservation/internal/usecase/queries"
	"stock-reservation/tests/common/builder"
	readstoremock "stock-reservation/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Queries mocks never touch the pool, so a nil DBTX is enough here.
var noDB sqlc.DBTX

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewReservationBuilder()

	t.Run("maps row to view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockQueries.EXPECT().GetReservationByID(ctx, noDB, b.ID).Return(b.BuildInfra(), nil)

		view, err := readstore.NewReservationReadStore(mockQueries, noDB).FindByID(ctx, b.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(b.BuildView(), view); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing row is marked not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockQueries.EXPECT().GetReservationByID(ctx, noDB, b.ID).Return(sqlc.Reservation{}, pgx.ErrNoRows)

		_, err := readstore.NewReservationReadStore(mockQueries, noDB).FindByID(ctx, b.ID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("driver failure stays a db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockQueries.EXPECT().GetReservationByID(ctx, noDB, b.ID).Return(sqlc.Reservation{}, errors.New("pool closed"))

		_, err := readstore.NewReservationReadStore(mockQueries, noDB).FindByID(ctx, b.ID)
		require.Error(t, err)
		assert.False(t, errs.Is(err, errs.ErrReservationNotFound))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationReadStore_FindByUser(t *testing.T) {
	ctx := context.Background()
	first := builder.NewReservationBuilder()
	second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.CreatedAt = first.CreatedAt.Add(-time.Minute)
	})

	t.Run("first page without cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockQueries.EXPECT().GetReservationsByUserFirstPage(ctx, noDB, sqlc.GetReservationsByUserFirstPageParams{
			UserID: "user-1",
			Limit:  3,
		}).Return([]sqlc.Reservation{first.BuildInfra(), second.BuildInfra()}, nil)

		views, err := readstore.NewReservationReadStore(mockQueries, noDB).FindByUser(ctx, "user-1", nil, 3)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, first.ID, views[0].ID)
		assert.Equal(t, second.ID, views[1].ID)
	})

	t.Run("keyset page after position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		pos := &queries.Position{CreatedAt: first.CreatedAt, ID: first.ID}
		mockQueries.EXPECT().GetReservationsByUserKeyset(ctx, noDB, sqlc.GetReservationsByUserKeysetParams{
			UserID:    "user-1",
			CreatedAt: pgconv.TimeToPgtype(first.CreatedAt),
			ID:        first.ID,
			PageSize:  2,
		}).Return([]sqlc.Reservation{second.BuildInfra()}, nil)

		views, err := readstore.NewReservationReadStore(mockQueries, noDB).FindByUser(ctx, "user-1", pos, 2)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, second.ID, views[0].ID)
	})
}

func TestInventoryReadStore_FindByProduct(t *testing.T) {
	ctx := context.Background()
	east := builder.NewInventoryBuilder().With(func(b *builder.InventoryBuilder) { b.ReservedStock = 4 })
	west := builder.NewInventoryBuilder().With(func(b *builder.InventoryBuilder) {
		b.Key.WarehouseID = "wh-west"
		b.CurrentStock = 2
	})

	testCases := []struct {
		name      string
		rows      []sqlc.Inventory
		queryErr  error
		want      []*queries.StockView
		wantErrFn func(error) bool
	}{
		{
			name: "one view per warehouse",
			rows: []sqlc.Inventory{east.BuildInfra(), west.BuildInfra()},
			want: []*queries.StockView{east.BuildView(), west.BuildView()},
		},
		{
			name:      "no rows is item not found",
			rows:      []sqlc.Inventory{},
			wantErrFn: func(err error) bool { return errs.Is(err, inventory.ErrItemNotFound) },
		},
		{
			name:      "query failure",
			queryErr:  errors.New("pool closed"),
			wantErrFn: func(err error) bool { return infra.IsKind(err, infra.KindDBFailure) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockInventoryViewQueries(ctrl)
			mockQueries.EXPECT().ListInventoryByProduct(ctx, noDB, sqlc.ListInventoryByProductParams{ProductID: "sku-100"}).
				Return(tc.rows, tc.queryErr)

			got, err := readstore.NewInventoryReadStore(mockQueries, noDB).FindByProduct(ctx, "sku-100", "")

			if tc.wantErrFn != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErrFn(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("views mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
