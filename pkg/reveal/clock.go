package reveal

import (
	"sort"
	"sync"
	"time"
)

// Timer is a scheduled callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks after a delay.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Loop is a single-goroutine event queue.
// Timers created through it do not run their callbacks directly: they post them
// into the queue, and the owner of the loop executes them one at a time.
type Loop struct {
	events    chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoop creates a loop with the given queue buffer.
func NewLoop(buffer int) *Loop {
	return &Loop{
		events: make(chan func(), buffer),
		done:   make(chan struct{}),
	}
}

// Events exposes the queue to the goroutine that owns the loop.
func (l *Loop) Events() <-chan func() {
	return l.events
}

// Post enqueues fn. It returns false if the loop was closed before fn could be queued.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// AfterFunc implements Clock. The callback is posted to the loop when the timer fires.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, func() {
		l.Post(fn)
	})
}

// Drain runs every queued callback without blocking and reports how many ran.
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case fn := <-l.events:
			fn()
			n++
		default:
			return n
		}
	}
}

// Close stops accepting events. Pending timers become no-ops.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
	})
}

// ManualClock is a deterministic Clock for tests.
// Time only moves when Advance is called; due callbacks run synchronously.
type ManualClock struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock   *ManualClock
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewManualClock creates a clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// AfterFunc implements Clock.
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.seq++
	t := &manualTimer{clock: c, due: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Now returns the elapsed virtual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (c *ManualClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing due timers in order.
// Timers scheduled by a callback fire in the same call if they fall due.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.due
		next.fired = true
		next.fn()
	}
	c.now = target
	c.compact()
}

func (c *ManualClock) nextDue(target time.Duration) *manualTimer {
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.fired && !t.stopped && t.due <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].seq < due[j].seq
		}
		return due[i].due < due[j].due
	})
	return due[0]
}

func (c *ManualClock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	c.timers = live
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
