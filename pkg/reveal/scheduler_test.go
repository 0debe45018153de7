package reveal_test

import (
	"testing"
	"time"

	"github.com/aretw0/intake/pkg/reveal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	prefixes  []string
	completed int
}

func (r *recorder) onCharacter(prefix string) { r.prefixes = append(r.prefixes, prefix) }
func (r *recorder) onComplete()               { r.completed++ }

func TestTypewriter_EmitsEveryPrefixOncePerQuantum(t *testing.T) {
	clock := reveal.NewManualClock()
	tw := reveal.NewTypewriter(clock, 30*time.Millisecond)
	rec := &recorder{}

	tw.Reveal("Hi", rec.onCharacter, rec.onComplete)
	assert.Empty(t, rec.prefixes, "nothing is revealed before the first quantum")

	clock.Advance(29 * time.Millisecond)
	assert.Empty(t, rec.prefixes)

	clock.Advance(1 * time.Millisecond)
	assert.Equal(t, []string{"H"}, rec.prefixes)
	assert.Equal(t, 0, rec.completed)

	clock.Advance(30 * time.Millisecond)
	assert.Equal(t, []string{"H", "Hi"}, rec.prefixes)
	assert.Equal(t, 1, rec.completed)

	clock.Advance(time.Second)
	assert.Equal(t, []string{"H", "Hi"}, rec.prefixes, "no prefix is repeated")
	assert.Equal(t, 1, rec.completed)
	assert.Zero(t, clock.Pending())
}

func TestTypewriter_CountsRunes(t *testing.T) {
	clock := reveal.NewManualClock()
	tw := reveal.NewTypewriter(clock, 0)
	rec := &recorder{}

	tw.Reveal("Olá!", rec.onCharacter, rec.onComplete)
	clock.Advance(4 * reveal.DefaultQuantum)

	assert.Equal(t, []string{"O", "Ol", "Olá", "Olá!"}, rec.prefixes)
	assert.Equal(t, 1, rec.completed)
}

func TestTypewriter_EmptyTextCompletesImmediately(t *testing.T) {
	tw := reveal.NewTypewriter(reveal.NewManualClock(), time.Millisecond)
	rec := &recorder{}

	tw.Reveal("", rec.onCharacter, rec.onComplete)

	assert.Empty(t, rec.prefixes)
	assert.Equal(t, 1, rec.completed)
}

func TestTypewriter_Cancel(t *testing.T) {
	clock := reveal.NewManualClock()
	tw := reveal.NewTypewriter(clock, 10*time.Millisecond)
	rec := &recorder{}

	cancel := tw.Reveal("Hello", rec.onCharacter, rec.onComplete)
	clock.Advance(20 * time.Millisecond)
	require.Equal(t, []string{"H", "He"}, rec.prefixes)

	cancel()
	clock.Advance(time.Second)

	assert.Equal(t, []string{"H", "He"}, rec.prefixes)
	assert.Equal(t, 0, rec.completed)
	assert.Zero(t, clock.Pending())

	cancel() // idempotent
}

func TestTypewriter_CancelFromCallback(t *testing.T) {
	clock := reveal.NewManualClock()
	tw := reveal.NewTypewriter(clock, 10*time.Millisecond)
	rec := &recorder{}

	var cancel func()
	cancel = tw.Reveal("abc", func(prefix string) {
		rec.onCharacter(prefix)
		if prefix == "a" {
			cancel()
		}
	}, rec.onComplete)

	clock.Advance(time.Second)
	assert.Equal(t, []string{"a"}, rec.prefixes)
	assert.Equal(t, 0, rec.completed)
}

func TestInstant(t *testing.T) {
	rec := &recorder{}
	cancel := reveal.Instant{}.Reveal("Hi", rec.onCharacter, rec.onComplete)

	assert.Equal(t, []string{"H", "Hi"}, rec.prefixes)
	assert.Equal(t, 1, rec.completed)
	assert.NotPanics(t, cancel)
}
