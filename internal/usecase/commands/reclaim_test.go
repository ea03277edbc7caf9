//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/pkg/clock"
	"stock-reservation/internal/usecase/commands"
	sharedmock "stock-reservation/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReclaimExpired_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.Seed(warehouseKey, 20, 0)

	var ids []*commands.PurchaseResult
	for i, q := range []int{2, 3, 4} {
		res, err := f.cmds.AttemptPurchase(ctx, attempt(qty(q), user(string(rune('a'+i)))))
		require.NoError(t, err)
		require.True(t, res.Success)
		ids = append(ids, res)
	}
	_, err := f.cmds.CommitReservation(ctx, *ids[0].ReservationID)
	require.NoError(t, err)

	f.clock.Add(16 * time.Minute)

	first := f.reclaim.ReclaimExpired(ctx)
	second := f.reclaim.ReclaimExpired(ctx)

	assert.Equal(t, int64(2), first.ReclaimedCount)
	assert.Equal(t, int64(0), second.ReclaimedCount)

	item := f.store.Item(warehouseKey)
	assert.Equal(t, 0, item.ReservedStock())
	assert.Equal(t, 18, item.CurrentStock(), "committed units stay consumed")
	assert.Equal(t, reservation.StatusCommitted, f.store.Reservation(*ids[0].ReservationID).Status())
	assert.Equal(t, reservation.StatusExpired, f.store.Reservation(*ids[1].ReservationID).Status())
	assert.Equal(t, reservation.StatusExpired, f.store.Reservation(*ids[2].ReservationID).Status())
}

func TestReclaimExpired_StoreFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockStockStore(ctrl)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	store.EXPECT().Backend().Return("mock").AnyTimes()
	store.EXPECT().ReclaimExpired(gomock.Any(), now).Return(int64(0), errors.New("deadlock detected"))

	uc := commands.NewReclaimUseCase(store, clock.NewMockClock(now), discardLogger(), nil)

	var result commands.ReclaimResult
	require.NotPanics(t, func() { result = uc.ReclaimExpired(context.Background()) })
	assert.Equal(t, int64(0), result.ReclaimedCount)
}

func TestReclaimExpired_PassesClockTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockStockStore(ctrl)
	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

	store.EXPECT().Backend().Return("mock").AnyTimes()
	store.EXPECT().ReclaimExpired(gomock.Any(), now).Return(int64(5), nil)

	uc := commands.NewReclaimUseCase(store, clock.NewMockClock(now), discardLogger(), nil)
	assert.Equal(t, int64(5), uc.ReclaimExpired(context.Background()).ReclaimedCount)
}
