package store

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestPollerStartIsIdempotent(t *testing.T) {
	var runs int32
	// Interval long enough that only the immediate invocation can fire.
	p := NewPoller("test", time.Hour, func(context.Context) {
		atomic.AddInt32(&runs, 1)
	}, zerolog.Nop())

	p.Start()
	waitFor(t, func() bool { return atomic.LoadInt32(&runs) == 1 })

	// A second Start while running must not trigger another immediate run.
	p.Start()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
	assert.True(t, p.Running())

	p.Stop()
	p.Wait()
	assert.False(t, p.Running())
}

func TestPollerStopWhenStoppedIsNoOp(t *testing.T) {
	p := NewPoller("test", time.Hour, func(context.Context) {}, zerolog.Nop())
	p.Stop()
	p.Stop()
	assert.False(t, p.Running())
}

func TestPollerTicks(t *testing.T) {
	var runs int32
	p := NewPoller("test", 10*time.Millisecond, func(context.Context) {
		atomic.AddInt32(&runs, 1)
	}, zerolog.Nop())

	p.Start()
	waitFor(t, func() bool { return atomic.LoadInt32(&runs) >= 3 })
	p.Stop()
	p.Wait()

	// No further runs after Stop.
	settled := atomic.LoadInt32(&runs)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, atomic.LoadInt32(&runs))
}

func TestPollerRestartsAfterStop(t *testing.T) {
	var runs int32
	p := NewPoller("test", time.Hour, func(context.Context) {
		atomic.AddInt32(&runs, 1)
	}, zerolog.Nop())

	p.Start()
	waitFor(t, func() bool { return atomic.LoadInt32(&runs) == 1 })
	p.Stop()
	p.Wait()

	p.Start()
	waitFor(t, func() bool { return atomic.LoadInt32(&runs) == 2 })
	p.Stop()
	p.Wait()
}

func TestPollersAreIndependent(t *testing.T) {
	a := NewPoller("a", time.Hour, func(context.Context) {}, zerolog.Nop())
	b := NewPoller("b", time.Hour, func(context.Context) {}, zerolog.Nop())

	a.Start()
	b.Start()
	require.True(t, a.Running())
	require.True(t, b.Running())

	a.Stop()
	assert.False(t, a.Running())
	assert.True(t, b.Running())
	b.Stop()
}
