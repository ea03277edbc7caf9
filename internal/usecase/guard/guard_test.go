//go:build unit

package guard_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"stock-reservation/internal/usecase/guard"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_TryRegister(t *testing.T) {
	r := guard.NewRegistry()

	require.True(t, r.TryRegister("p1", "alice"))
	assert.False(t, r.TryRegister("p1", "alice"), "same user on same key is a duplicate")
	assert.True(t, r.TryRegister("p1", "bob"), "other users are not blocked")
	assert.True(t, r.TryRegister("p2", "alice"), "other keys are not blocked")
	assert.Equal(t, 3, r.Active())

	r.Unregister("p1", "alice")
	assert.False(t, r.IsActive("p1", "alice"))
	assert.True(t, r.TryRegister("p1", "alice"), "slot is free again after unregister")
}

func TestRegistry_Unregister(t *testing.T) {
	t.Run("unknown entries are a no-op", func(t *testing.T) {
		r := guard.NewRegistry()
		r.Unregister("nope", "nobody")
		r.Register("p1", "alice")
		r.Unregister("p1", "bob")
		assert.Equal(t, 1, r.Active())
	})

	t.Run("empty keys are dropped", func(t *testing.T) {
		r := guard.NewRegistry()
		r.Register("p1", "alice")
		r.Unregister("p1", "alice")

		s := r.Stats()
		assert.Equal(t, 0, s.TotalActiveProducts)
		assert.Empty(t, s.PerProductUserCount)
	})
}

func TestRegistry_Stats(t *testing.T) {
	r := guard.NewRegistry()
	r.Register("p1", "alice")
	r.Register("p1", "bob")
	r.Register("p2:red", "alice")

	want := guard.Stats{
		TotalActiveProducts: 2,
		TotalActiveUsers:    3,
		PerProductUserCount: map[string]int{"p1": 2, "p2:red": 1},
	}
	if diff := cmp.Diff(want, r.Stats()); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}

	// the snapshot is detached from the registry
	s := r.Stats()
	s.PerProductUserCount["p1"] = 99
	assert.Equal(t, 2, r.Stats().PerProductUserCount["p1"])
}

func TestRegistry_ConcurrentTryRegister(t *testing.T) {
	const (
		goroutines = 64
		users      = 8
	)
	r := guard.NewRegistry()

	var (
		wg    sync.WaitGroup
		wins  [users]atomic.Int32
		start = make(chan struct{})
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			u := i % users
			if r.TryRegister("hot", fmt.Sprintf("user-%d", u)) {
				wins[u].Add(1)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	for u := 0; u < users; u++ {
		assert.Equal(t, int32(1), wins[u].Load(), "user-%d must win exactly once", u)
	}
	assert.Equal(t, users, r.Active())
	assert.Equal(t, users, r.Stats().PerProductUserCount["hot"])
}
