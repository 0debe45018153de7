package runner

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/intake/internal/runtime"
	"github.com/aretw0/intake/pkg/adapters/memory"
	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/reveal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScript() domain.Script {
	return domain.Script{
		{Text: "Hi there"},
		{Text: "Pick one", Field: "choice", Options: []string{"A", "B"}},
		{Text: "Name?", Field: "name", RequiresInput: true},
		{Text: "Bye"},
	}
}

func newTestEngine(t *testing.T, opts ...runtime.EngineOption) (*runtime.Engine, *memory.Store) {
	t.Helper()
	sink := memory.NewStore()
	eng, err := runtime.NewEngine(testScript(), append([]runtime.EngineOption{runtime.WithSink(sink)}, opts...)...)
	require.NoError(t, err)
	return eng, sink
}

func runText(t *testing.T, eng Engine, input string, opts ...Option) (string, error) {
	t.Helper()
	out := &strings.Builder{}
	handler := NewTextHandler(strings.NewReader(input), out, WithEcho(true))

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	r := NewRunner(append([]Option{WithInputHandler(handler)}, opts...)...)
	err := r.Run(ctx, eng)
	return out.String(), err
}

func savedAnswers(t *testing.T, sink *memory.Store) map[string]string {
	t.Helper()
	answers, err := sink.Load(context.Background(), runtime.DefaultSinkKey)
	require.NoError(t, err)
	return answers
}

func TestRunner_Run_BasicFlow(t *testing.T) {
	eng, sink := newTestEngine(t)

	out, err := runText(t, eng, "2\nBob\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Agent: Hi there")
	assert.Contains(t, out, "1) A")
	assert.Contains(t, out, "2) B")
	assert.Contains(t, out, "You: B")
	assert.Contains(t, out, "You: Bob")
	assert.Contains(t, out, "Agent: Bye")
	assert.Contains(t, out, "| Choice | B |")
	assert.Contains(t, out, "| Name | Bob |")

	assert.Equal(t, map[string]string{"choice": "B", "name": "Bob"}, savedAnswers(t, sink))
	assert.True(t, eng.Snapshot().Completed())
}

func TestRunner_Run_RejectsUnknownOption(t *testing.T) {
	eng, sink := newTestEngine(t)

	out, err := runText(t, eng, "7\nb\nBob\n")
	require.NoError(t, err)

	assert.Contains(t, out, "[System] Please choose one of 1) A, 2) B")
	assert.Equal(t, "B", savedAnswers(t, sink)["choice"])
}

func TestRunner_Run_EmptyAnswer(t *testing.T) {
	eng, sink := newTestEngine(t)

	out, err := runText(t, eng, "1\n   \nBob\n")
	require.NoError(t, err)

	assert.Contains(t, out, "[System] An answer is required.")
	assert.Equal(t, "Bob", savedAnswers(t, sink)["name"])
}

func TestRunner_Run_Exit(t *testing.T) {
	eng, sink := newTestEngine(t)

	_, err := runText(t, eng, "A\nexit\n")
	require.NoError(t, err)

	snap := eng.Snapshot()
	assert.Equal(t, domain.PhaseAwaitingText, snap.Phase)
	assert.Equal(t, "A", snap.Answers["choice"])
	assert.Equal(t, 0, sink.Saves())
}

func TestRunner_Run_InputExhausted(t *testing.T) {
	eng, sink := newTestEngine(t)

	_, err := runText(t, eng, "")
	require.NoError(t, err)

	assert.Equal(t, domain.PhaseAwaitingChoice, eng.Snapshot().Phase)
	assert.Equal(t, 0, sink.Saves())
}

func TestRunner_Run_Restart(t *testing.T) {
	eng, sink := newTestEngine(t)

	out, err := runText(t, eng, "1\nAnn\nhello\nrestart\n2\nBob\nexit\n", WithRestart(true))
	require.NoError(t, err)

	assert.Contains(t, out, "The conversation is over.")
	assert.Contains(t, out, "--- new conversation ---")
	assert.Equal(t, 2, sink.Saves())
	assert.Equal(t, map[string]string{"choice": "B", "name": "Bob"}, savedAnswers(t, sink))
	assert.Equal(t, 2, strings.Count(out, "## Summary"))
}

func TestRunner_Run_RestartDisabled(t *testing.T) {
	eng, sink := newTestEngine(t)

	_, err := runText(t, eng, "1\nrestart\n2\nBob\n")
	require.NoError(t, err)

	// Without restart support the word is just an answer.
	assert.Equal(t, map[string]string{"choice": "A", "name": "restart"}, savedAnswers(t, sink))
	assert.Equal(t, 1, sink.Saves())
}

func TestRunner_Run_SaveFailure(t *testing.T) {
	eng, sink := newTestEngine(t)
	sink.FailWith(errors.New("disk full"))

	out, err := runText(t, eng, "A\nBob\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Your answers could not be saved: disk full")
	assert.Contains(t, out, "| Name | Bob |")
}

func TestRunner_Run_Typewriter(t *testing.T) {
	loop := reveal.NewLoop(16)
	defer loop.Close()

	eng, sink := newTestEngine(t, runtime.WithScheduler(reveal.NewTypewriter(loop, time.Millisecond)))

	out, err := runText(t, eng, "A\nBob\n", WithLoop(loop))
	require.NoError(t, err)

	assert.Contains(t, out, "Agent: Hi there\n")
	assert.Contains(t, out, "Agent: Pick one\n")
	assert.Contains(t, out, "Agent: Bye\n")
	assert.Equal(t, map[string]string{"choice": "A", "name": "Bob"}, savedAnswers(t, sink))
}

func TestRunner_Run_RevealWithoutLoop(t *testing.T) {
	clock := reveal.NewManualClock()
	eng, _ := newTestEngine(t, runtime.WithScheduler(reveal.NewTypewriter(clock, time.Millisecond)))

	_, err := runText(t, eng, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no event loop")
}

func TestRunner_Run_ContextCancel(t *testing.T) {
	eng, _ := newTestEngine(t)

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(t.Context())
	r := NewRunner(WithInputHandler(NewTextHandler(pr, io.Discard)))

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx, eng) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop on cancellation")
	}
}

func TestRunner_Run_JSON(t *testing.T) {
	eng, sink := newTestEngine(t)

	out := &strings.Builder{}
	r := NewRunner(WithInputHandler(NewJSONHandler(strings.NewReader("\"2\"\nBob\n"), out)))
	require.NoError(t, r.Run(t.Context(), eng))

	events := decodeEvents(t, out.String())
	require.NotEmpty(t, events)

	first := events[0]
	assert.Equal(t, EventUpdate, first.Type)
	require.NotNil(t, first.Diff)
	require.NotNil(t, first.Diff.Prompt)
	assert.Equal(t, []string{"A", "B"}, first.Diff.Prompt.Options)

	last := events[len(events)-1]
	assert.Equal(t, EventSummary, last.Type)
	assert.Equal(t, []domain.SummaryLine{
		{Field: "choice", Label: "Choice", Value: "B"},
		{Field: "name", Label: "Name", Value: "Bob"},
	}, last.Summary)

	assert.Equal(t, map[string]string{"choice": "B", "name": "Bob"}, savedAnswers(t, sink))
}
