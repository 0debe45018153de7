package runner

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEvents(t *testing.T, output string) []Event {
	t.Helper()
	var events []Event
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(line), &ev), "line: %s", line)
		events = append(events, ev)
	}
	return events
}

func TestJSONHandler_Render(t *testing.T) {
	buf := &strings.Builder{}
	handler := NewJSONHandler(strings.NewReader(""), buf)

	snap := domain.Snapshot{
		ConversationID: "c1",
		Phase:          domain.PhaseAwaitingText,
		Transcript:     []domain.Message{{Speaker: domain.SpeakerAgent, Text: "Name?"}},
		Prompt:         &domain.InputRequest{Type: domain.InputText, Field: "name"},
	}
	require.NoError(t, handler.Render(context.Background(), domain.Diff(nil, &snap), snap))
	require.NoError(t, handler.SystemOutput(context.Background(), "hello"))

	events := decodeEvents(t, buf.String())
	require.Len(t, events, 2)

	assert.Equal(t, EventUpdate, events[0].Type)
	assert.Equal(t, "c1", events[0].Diff.ConversationID)
	assert.Equal(t, "Name?", events[0].Diff.Transcript.Messages[0].Text)
	assert.Equal(t, "name", events[0].Diff.Prompt.Field)

	assert.Equal(t, Event{Type: EventSystem, Message: "hello"}, events[1])
}

func TestJSONHandler_Input(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"JSON String", "\"Printer Fix\"\n", "Printer Fix"},
		{"Raw Text", "  Bob  \n", "Bob"},
		{"No Trailing Newline", "last", "last"},
		{"Control Characters", "\"a\\u001bb\"\n", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewJSONHandler(strings.NewReader(tt.input), &strings.Builder{})
			got, err := handler.Input(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONHandler_Input_TooLarge(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "4")

	buf := &strings.Builder{}
	handler := NewJSONHandler(strings.NewReader("toolong\nok\n"), buf)

	got, err := handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	events := decodeEvents(t, buf.String())
	require.Len(t, events, 1)
	assert.Equal(t, EventSystem, events[0].Type)
	assert.Contains(t, events[0].Message, "exceeds maximum allowed size")
}
