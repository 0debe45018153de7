package reveal_test

import (
	"testing"
	"time"

	"github.com/aretw0/intake/pkg/reveal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualClock_FiresInOrder(t *testing.T) {
	clock := reveal.NewManualClock()
	var order []string

	clock.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	clock.AfterFunc(20*time.Millisecond, func() { order = append(order, "c") })
	stopped := clock.AfterFunc(15*time.Millisecond, func() { order = append(order, "x") })
	assert.True(t, stopped.Stop())

	clock.Advance(20 * time.Millisecond)

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 20*time.Millisecond, clock.Now())
	assert.Zero(t, clock.Pending())
}

func TestManualClock_ChainedTimers(t *testing.T) {
	clock := reveal.NewManualClock()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		if ticks < 5 {
			clock.AfterFunc(time.Millisecond, tick)
		}
	}
	clock.AfterFunc(time.Millisecond, tick)

	clock.Advance(3 * time.Millisecond)
	assert.Equal(t, 3, ticks)

	clock.Advance(time.Hour)
	assert.Equal(t, 5, ticks)
}

func TestLoop_TypewriterRunsOnOwnerGoroutine(t *testing.T) {
	loop := reveal.NewLoop(8)
	defer loop.Close()

	tw := reveal.NewTypewriter(loop, time.Millisecond)
	var prefixes []string
	done := false
	tw.Reveal("abc", func(p string) { prefixes = append(prefixes, p) }, func() { done = true })

	deadline := time.After(2 * time.Second)
	for !done {
		select {
		case fn := <-loop.Events():
			fn()
		case <-deadline:
			require.FailNow(t, "reveal did not complete")
		}
	}

	assert.Equal(t, []string{"a", "ab", "abc"}, prefixes)
}

func TestLoop_PostAfterClose(t *testing.T) {
	loop := reveal.NewLoop(1)
	assert.True(t, loop.Post(func() {}))
	assert.Equal(t, 1, loop.Drain())

	loop.Close()
	assert.False(t, loop.Post(func() {}))
	loop.Close()
}
