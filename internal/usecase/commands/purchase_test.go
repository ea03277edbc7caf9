//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/pkg/clock"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/pkg/metrics"
	"stock-reservation/internal/usecase/commands"
	"stock-reservation/internal/usecase/guard"
	"stock-reservation/internal/usecase/shared"
	"stock-reservation/tests/common/builder"
	"stock-reservation/tests/common/storetest"
	sharedmock "stock-reservation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const maxQuantity = 100

var warehouseKey = inventory.Key{ProductID: "sku-100", WarehouseID: "wh-east"}

type fixture struct {
	store    *storetest.Store
	registry *guard.Registry
	clock    *clock.MockClock
	cmds     commands.PurchaseCommands
	reclaim  commands.ReclaimCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storetest.New()
	registry := guard.NewRegistry()
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	factory := reservation.NewFactory(clk, 15*time.Minute)
	logger := discardLogger()
	m := metrics.New()
	return &fixture{
		store:    store,
		registry: registry,
		clock:    clk,
		cmds:     commands.NewPurchaseUseCase(store, registry, factory, clk, maxQuantity, logger, m),
		reclaim:  commands.NewReclaimUseCase(store, clk, logger, m),
	}
}

func newMockedUseCase(t *testing.T) (commands.PurchaseCommands, *sharedmock.MockStockStore, *guard.Registry) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockStockStore(ctrl)
	store.EXPECT().Backend().Return("mock").AnyTimes()
	registry := guard.NewRegistry()
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	uc := commands.NewPurchaseUseCase(store, registry, reservation.NewFactory(clk, 0), clk, maxQuantity, discardLogger(), nil)
	return uc, store, registry
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func attempt(mutate ...func(*builder.PurchaseBuilder)) commands.PurchaseAttempt {
	b := builder.NewPurchaseBuilder()
	for _, m := range mutate {
		b.With(m)
	}
	return b.BuildAttempt()
}

func qty(n int) func(*builder.PurchaseBuilder) {
	return func(b *builder.PurchaseBuilder) { b.Quantity = n }
}

func user(id string) func(*builder.PurchaseBuilder) {
	return func(b *builder.PurchaseBuilder) { b.UserID = id }
}

// =============================================================================
// End-to-end scenarios against the in-memory store
// =============================================================================

func TestAttemptPurchase_ReserveThenShortage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.Seed(warehouseKey, 10, 0)

	first, err := f.cmds.AttemptPurchase(ctx, attempt(qty(7)))
	require.NoError(t, err)
	require.True(t, first.Success, first.Message)
	require.NotNil(t, first.ReservationID)
	require.NotNil(t, first.AvailableStock)
	assert.Equal(t, 3, *first.AvailableStock)
	assert.Equal(t, f.clock.Now().Add(15*time.Minute), *first.ExpiresAt)

	stored := f.store.Reservation(*first.ReservationID)
	require.NotNil(t, stored)
	assert.Equal(t, reservation.StatusActive, stored.Status())
	assert.Equal(t, 7, stored.Quantity())
	assert.Equal(t, "wh-east", stored.Key().WarehouseID)

	second, err := f.cmds.AttemptPurchase(ctx, attempt(qty(5), user("user-2")))
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, commands.KindInsufficientStock, second.ErrorKind)
	require.NotNil(t, second.AvailableStock)
	assert.Equal(t, 3, *second.AvailableStock)
	assert.Equal(t, "Only 3 left in stock", second.Message)
	assert.Nil(t, second.ReservationID)

	assert.Equal(t, 7, f.store.Item(warehouseKey).ReservedStock())
	assert.Equal(t, 0, f.registry.Active())
}

func TestAttemptPurchase_ExpiredHoldIsReclaimed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.Seed(warehouseKey, 10, 0)

	res, err := f.cmds.AttemptPurchase(ctx, attempt(qty(4)))
	require.NoError(t, err)
	require.True(t, res.Success)

	f.clock.Add(10 * time.Minute)
	assert.Equal(t, int64(0), f.reclaim.ReclaimExpired(ctx).ReclaimedCount, "hold is still inside its TTL")

	f.clock.Add(6 * time.Minute)
	assert.Equal(t, int64(1), f.reclaim.ReclaimExpired(ctx).ReclaimedCount)

	item := f.store.Item(warehouseKey)
	assert.Equal(t, 0, item.ReservedStock())
	assert.Equal(t, 10, item.Available())
	assert.Equal(t, reservation.StatusExpired, f.store.Reservation(*res.ReservationID).Status())
}

func TestAttemptPurchase_UnknownProduct(t *testing.T) {
	f := newFixture(t)
	f.store.Seed(warehouseKey, 10, 0)

	res, err := f.cmds.AttemptPurchase(context.Background(), attempt(func(b *builder.PurchaseBuilder) { b.ProductID = "missing" }))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, commands.KindProductNotFound, res.ErrorKind)
	assert.False(t, res.ErrorKind.Retryable())
	assert.Equal(t, 0, f.registry.Active(), "guard entry must not outlive the call")
	assert.Empty(t, f.registry.Stats().PerProductUserCount)
}

func TestAttemptPurchase_OutOfStock(t *testing.T) {
	f := newFixture(t)
	f.store.Seed(warehouseKey, 3, 3)

	res, err := f.cmds.AttemptPurchase(context.Background(), attempt())
	require.NoError(t, err)
	assert.Equal(t, commands.KindOutOfStock, res.ErrorKind)
	require.NotNil(t, res.AvailableStock)
	assert.Equal(t, 0, *res.AvailableStock)
}

func TestAttemptPurchase_WarehouseFallback(t *testing.T) {
	f := newFixture(t)
	small := warehouseKey.WithWarehouse("wh-a")
	large := warehouseKey.WithWarehouse("wh-b")
	f.store.Seed(small, 2, 0)
	f.store.Seed(large, 9, 1)

	res, err := f.cmds.AttemptPurchase(context.Background(), attempt(func(b *builder.PurchaseBuilder) {
		b.WarehouseID = ""
		b.Quantity = 3
	}))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "wh-b", f.store.Reservation(*res.ReservationID).Key().WarehouseID)
	assert.Equal(t, 4, f.store.Item(large).ReservedStock())
	assert.Equal(t, 0, f.store.Item(small).ReservedStock())
}

func TestAttemptPurchase_Validation(t *testing.T) {
	f := newFixture(t)
	f.store.Seed(warehouseKey, 10, 0)

	testCases := []struct {
		name   string
		mutate func(*builder.PurchaseBuilder)
	}{
		{name: "missing user", mutate: user("")},
		{name: "missing product", mutate: func(b *builder.PurchaseBuilder) { b.ProductID = "" }},
		{name: "zero quantity", mutate: qty(0)},
		{name: "negative quantity", mutate: qty(-2)},
		{name: "above max quantity", mutate: qty(maxQuantity + 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := f.cmds.AttemptPurchase(context.Background(), attempt(tc.mutate))
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidPurchaseAttempt), "got %v", err)
			assert.Nil(t, res)
		})
	}
	assert.Equal(t, 0, f.store.Item(warehouseKey).ReservedStock())
	assert.Equal(t, 0, f.registry.Active())
}

// =============================================================================
// Concurrency properties
// =============================================================================

func TestAttemptPurchase_NoOversell(t *testing.T) {
	testCases := []struct {
		name     string
		stock    int
		quantity int
		workers  int
	}{
		{name: "single units", stock: 10, quantity: 1, workers: 40},
		{name: "uneven split", stock: 10, quantity: 3, workers: 25},
		{name: "one winner", stock: 5, quantity: 5, workers: 16},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			f.store.Seed(warehouseKey, tc.stock, 0)
			f.store.HoldFor = time.Millisecond

			// Contended attempts come back as SYSTEM_ERROR; a client retries them.
			// Retrying until every worker ends in a terminal outcome must still
			// never hand out more than the stock.
			var (
				mu        sync.Mutex
				success   int
				exhausted int
				wg        sync.WaitGroup
			)
			for i := 0; i < tc.workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					a := attempt(qty(tc.quantity), user(uuid.NewString()))
					for {
						res, err := f.cmds.AttemptPurchase(ctx, a)
						if !assert.NoError(t, err) {
							return
						}
						if item := f.store.Item(warehouseKey); item.Available() < 0 {
							t.Errorf("available stock went negative: %d", item.Available())
						}
						if res.Success {
							mu.Lock()
							success++
							mu.Unlock()
							return
						}
						switch res.ErrorKind {
						case commands.KindInsufficientStock, commands.KindOutOfStock:
							mu.Lock()
							exhausted++
							mu.Unlock()
							return
						case commands.KindSystemError:
							continue
						default:
							t.Errorf("unexpected outcome %s", res.ErrorKind)
							return
						}
					}
				}(i)
			}
			wg.Wait()

			winners := tc.stock / tc.quantity
			assert.Equal(t, winners, success)
			assert.Equal(t, tc.workers-winners, exhausted)
			assert.Equal(t, winners*tc.quantity, f.store.Item(warehouseKey).ReservedStock())
			assert.Len(t, f.store.Reservations(), winners)
			assert.Equal(t, 0, f.registry.Active())
		})
	}
}

func TestAttemptPurchase_DuplicateAttemptNeverReachesStore(t *testing.T) {
	uc, store, registry := newMockedUseCase(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	store.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.StockTx) error) error {
			close(entered)
			<-release
			return errs.Mark(errs.New("row locked"), inventory.ErrContention)
		}).Times(1)

	a := attempt()
	firstDone := make(chan *commands.PurchaseResult, 1)
	go func() {
		res, _ := uc.AttemptPurchase(context.Background(), a)
		firstDone <- res
	}()
	<-entered

	second, err := uc.AttemptPurchase(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, commands.KindDuplicatePurchaseAttempt, second.ErrorKind)
	assert.True(t, second.ErrorKind.Retryable())
	assert.True(t, registry.IsActive(a.Key().LockKey(), a.UserID), "first attempt still holds its slot")

	close(release)
	first := <-firstDone
	assert.Equal(t, commands.KindSystemError, first.ErrorKind)
	assert.False(t, registry.IsActive(a.Key().LockKey(), a.UserID))
}

// =============================================================================
// Store failure mapping
// =============================================================================

func TestAttemptPurchase_StoreFailures(t *testing.T) {
	plenty := builder.NewInventoryBuilder().With(func(b *builder.InventoryBuilder) { b.CurrentStock = 1000 }).BuildDomain()

	testCases := []struct {
		name        string
		acquireErr  error
		applyErr    error
		wantKind    commands.ErrorKind
		wantMessage string
	}{
		{
			name:        "row lock held elsewhere is SYSTEM_ERROR even with stock to spare",
			acquireErr:  errs.Mark(errs.New("could not obtain lock on row"), inventory.ErrContention),
			wantKind:    commands.KindSystemError,
			wantMessage: "Product is currently being purchased by another user, try again.",
		},
		{
			name:        "lost version race is SYSTEM_ERROR",
			applyErr:    errs.Mark(errs.New("version 3 is stale"), inventory.ErrContention),
			wantKind:    commands.KindSystemError,
			wantMessage: "Product is currently being purchased by another user, try again.",
		},
		{
			name:        "driver failure is SYSTEM_ERROR without driver details",
			applyErr:    errors.New("pq: connection reset by peer"),
			wantKind:    commands.KindSystemError,
			wantMessage: "Purchase could not be completed, try again.",
		},
		{
			name:       "missing row is PRODUCT_NOT_FOUND",
			acquireErr: errs.Wrap(inventory.ErrItemNotFound, "sku-100"),
			wantKind:   commands.KindProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, store, registry := newMockedUseCase(t)
			tx := sharedmock.NewMockStockTx(gomock.NewController(t))

			store.EXPECT().Within(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.StockTx) error) error {
					return fn(ctx, tx)
				})
			if tc.acquireErr != nil {
				tx.EXPECT().AcquireForUpdate(gomock.Any(), gomock.Any()).Return(nil, tc.acquireErr)
			} else {
				tx.EXPECT().AcquireForUpdate(gomock.Any(), gomock.Any()).Return(plenty, nil)
				tx.EXPECT().ApplyReservation(gomock.Any(), plenty, gomock.Any()).Return(nil, tc.applyErr)
			}

			res, err := uc.AttemptPurchase(context.Background(), attempt())
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, tc.wantKind, res.ErrorKind)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, res.Message)
			}
			assert.NotContains(t, res.Message, "pq:")
			assert.Equal(t, 0, registry.Active())
		})
	}
}

func TestAttemptPurchase_PanicInStoreIsContained(t *testing.T) {
	uc, store, registry := newMockedUseCase(t)
	store.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, func(context.Context, shared.StockTx) error) error {
			panic("driver exploded")
		})

	var (
		res *commands.PurchaseResult
		err error
	)
	require.NotPanics(t, func() {
		res, err = uc.AttemptPurchase(context.Background(), attempt())
	})
	require.NoError(t, err)
	assert.Equal(t, commands.KindSystemError, res.ErrorKind)
	assert.Equal(t, 0, registry.Active())
}

// =============================================================================
// Commit / Cancel
// =============================================================================

func TestCloseReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("commit consumes current stock", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed(warehouseKey, 10, 0)
		res, err := f.cmds.AttemptPurchase(ctx, attempt(qty(4)))
		require.NoError(t, err)

		closed, err := f.cmds.CommitReservation(ctx, *res.ReservationID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCommitted, closed.Status())

		item := f.store.Item(warehouseKey)
		assert.Equal(t, 6, item.CurrentStock())
		assert.Equal(t, 0, item.ReservedStock())
	})

	t.Run("cancel hands units back", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed(warehouseKey, 10, 0)
		res, err := f.cmds.AttemptPurchase(ctx, attempt(qty(4)))
		require.NoError(t, err)

		closed, err := f.cmds.CancelReservation(ctx, *res.ReservationID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, closed.Status())

		item := f.store.Item(warehouseKey)
		assert.Equal(t, 10, item.CurrentStock())
		assert.Equal(t, 10, item.Available())
	})

	t.Run("second close is rejected and stock moves once", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed(warehouseKey, 10, 0)
		res, err := f.cmds.AttemptPurchase(ctx, attempt(qty(4)))
		require.NoError(t, err)

		_, err = f.cmds.CommitReservation(ctx, *res.ReservationID)
		require.NoError(t, err)
		_, err = f.cmds.CancelReservation(ctx, *res.ReservationID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrReservationNotActive))
		assert.Equal(t, 6, f.store.Item(warehouseKey).CurrentStock())
	})

	t.Run("expired reservation cannot be committed", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed(warehouseKey, 10, 0)
		res, err := f.cmds.AttemptPurchase(ctx, attempt(qty(2)))
		require.NoError(t, err)
		f.clock.Add(time.Hour)
		f.reclaim.ReclaimExpired(ctx)

		_, err = f.cmds.CommitReservation(ctx, *res.ReservationID)
		assert.True(t, errs.Is(err, errs.ErrReservationNotActive))
		assert.Equal(t, 10, f.store.Item(warehouseKey).CurrentStock())
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.cmds.CommitReservation(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})

	t.Run("store failure is marked as a database failure", func(t *testing.T) {
		uc, store, _ := newMockedUseCase(t)
		store.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		_, err := uc.CancelReservation(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
