package reveal

import (
	"sync/atomic"
	"time"
)

// DefaultQuantum is the delay between two revealed characters.
const DefaultQuantum = 30 * time.Millisecond

// Scheduler reveals text incrementally.
// onCharacter receives text[0:1], text[0:2], … text[0:n] (in runes), then
// onComplete runs once. The returned function cancels the reveal; after it
// returns no further callbacks fire. Cancelling a finished reveal is a no-op.
type Scheduler interface {
	Reveal(text string, onCharacter func(prefix string), onComplete func()) (cancel func())
}

// Typewriter reveals one rune per quantum using a Clock.
type Typewriter struct {
	clock   Clock
	quantum time.Duration
}

// NewTypewriter creates a Typewriter. A non-positive quantum falls back to DefaultQuantum.
func NewTypewriter(clock Clock, quantum time.Duration) *Typewriter {
	if quantum <= 0 {
		quantum = DefaultQuantum
	}
	return &Typewriter{clock: clock, quantum: quantum}
}

// Quantum returns the delay between characters.
func (t *Typewriter) Quantum() time.Duration {
	return t.quantum
}

type run struct {
	stopped atomic.Bool
	timer   Timer
}

func (r *run) cancel() {
	if r.stopped.Swap(true) {
		return
	}
	if r.timer != nil {
		r.timer.Stop()
	}
}

// Reveal implements Scheduler. Empty text completes immediately.
func (t *Typewriter) Reveal(text string, onCharacter func(prefix string), onComplete func()) func() {
	runes := []rune(text)
	r := &run{}

	var step func(n int)
	step = func(n int) {
		if r.stopped.Load() {
			return
		}
		if n > 0 && onCharacter != nil {
			onCharacter(string(runes[:n]))
			if r.stopped.Load() {
				return
			}
		}
		if n == len(runes) {
			r.stopped.Store(true)
			if onComplete != nil {
				onComplete()
			}
			return
		}
		r.timer = t.clock.AfterFunc(t.quantum, func() { step(n + 1) })
	}
	step(0)

	return r.cancel
}

// Instant reveals the whole text synchronously, one prefix at a time.
// It is meant for headless runs and tests.
type Instant struct{}

// Reveal implements Scheduler.
func (Instant) Reveal(text string, onCharacter func(prefix string), onComplete func()) func() {
	runes := []rune(text)
	if onCharacter != nil {
		for n := 1; n <= len(runes); n++ {
			onCharacter(string(runes[:n]))
		}
	}
	if onComplete != nil {
		onComplete()
	}
	return func() {}
}
