//go:build unit

package worker_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"stock-reservation/internal/pkg/config"
	"stock-reservation/internal/usecase/commands"
	"stock-reservation/internal/worker"
	commandsmock "stock-reservation/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReclaimer(t *testing.T, cmds commands.ReclaimCommands) *worker.Reclaimer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return worker.NewReclaimer(cmds, logger, config.ReservationConfig{
		ReclaimInterval: 10 * time.Millisecond,
		ReclaimTimeout:  time.Second,
	})
}

func TestReclaimer_RunsOnInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockReclaimCommands(ctrl)

	var calls atomic.Int32
	cmds.EXPECT().ReclaimExpired(gomock.Any()).
		DoAndReturn(func(ctx context.Context) commands.ReclaimResult {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "each sweep runs under a timeout")
			calls.Add(1)
			return commands.ReclaimResult{ReclaimedCount: 1}
		}).MinTimes(2)

	r := newReclaimer(t, cmds)
	require.NoError(t, r.Start(context.Background()))

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, r.Stop())

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no sweeps after Stop")
}

func TestReclaimer_SurvivesPanickingSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockReclaimCommands(ctrl)

	var calls atomic.Int32
	cmds.EXPECT().ReclaimExpired(gomock.Any()).
		DoAndReturn(func(context.Context) commands.ReclaimResult {
			if calls.Add(1) == 1 {
				panic("boom")
			}
			return commands.ReclaimResult{}
		}).MinTimes(2)

	r := newReclaimer(t, cmds)
	require.NoError(t, r.Start(context.Background()))
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, r.Stop())
}

func TestReclaimer_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockReclaimCommands(ctrl)
	cmds.EXPECT().ReclaimExpired(gomock.Any()).Return(commands.ReclaimResult{}).AnyTimes()

	r := newReclaimer(t, cmds)

	assert.Error(t, r.Stop(), "stop before start")
	require.NoError(t, r.Start(context.Background()))
	assert.Error(t, r.Start(context.Background()), "double start")
	require.NoError(t, r.Stop())
	require.NoError(t, r.Start(context.Background()), "restart after stop")
	require.NoError(t, r.Stop())
}

func TestReclaimer_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockReclaimCommands(ctrl)
	cmds.EXPECT().ReclaimExpired(gomock.Any()).Return(commands.ReclaimResult{}).AnyTimes()

	r := newReclaimer(t, cmds)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, r.Start(ctx))
	cancel()

	done := make(chan error, 1)
	go func() { done <- r.Stop() }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}
