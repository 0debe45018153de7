package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func choiceSnapshot(options ...string) domain.Snapshot {
	return domain.Snapshot{
		Phase:  domain.PhaseAwaitingChoice,
		Prompt: &domain.InputRequest{Type: domain.InputChoice, Field: "f", Options: options},
	}
}

func TestOptionResolver(t *testing.T) {
	resolve := OptionResolver()
	snap := choiceSnapshot("Printer Fix", "Text", "2")

	tests := []struct {
		input string
		want  string
	}{
		{"Printer Fix", "Printer Fix"},
		{"printer fix", "Printer Fix"},
		{"1", "Printer Fix"},
		{"2", "2"}, // an exact option wins over its position
		{"3", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := resolve(context.Background(), snap, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "0", "4", "Printer"} {
		_, err := resolve(context.Background(), snap, bad)
		assert.ErrorIs(t, err, ErrInputRejected, "input %q", bad)
	}
}

func TestOptionResolver_TextPromptPassesThrough(t *testing.T) {
	snap := domain.Snapshot{
		Phase:  domain.PhaseAwaitingText,
		Prompt: &domain.InputRequest{Type: domain.InputText, Field: "name"},
	}
	got, err := OptionResolver()(context.Background(), snap, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestMultiInterceptor(t *testing.T) {
	upper := func(ctx context.Context, snap domain.Snapshot, input string) (string, error) {
		return input + "!", nil
	}
	chain := MultiInterceptor(OptionResolver(), upper, MaxLength(3))

	got, err := chain(context.Background(), choiceSnapshot("ab", "cd"), "2")
	require.NoError(t, err)
	assert.Equal(t, "cd!", got)

	_, err = chain(context.Background(), choiceSnapshot("abc"), "abc")
	assert.ErrorIs(t, err, ErrInputRejected)

	boom := errors.New("boom")
	failing := MultiInterceptor(func(context.Context, domain.Snapshot, string) (string, error) { return "", boom })
	_, err = failing(context.Background(), choiceSnapshot("a"), "a")
	assert.ErrorIs(t, err, boom)
}

func TestRejectionMessage(t *testing.T) {
	_, err := OptionResolver()(context.Background(), choiceSnapshot("A", "B"), "x")
	assert.Equal(t, "Please choose one of 1) A, 2) B", rejection(err))
}
