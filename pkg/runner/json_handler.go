package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/intake/pkg/domain"
)

// Event types emitted by the JSONHandler.
const (
	EventUpdate  = "update"
	EventSummary = "summary"
	EventSystem  = "system"
)

// Event is one line of JSONHandler output.
type Event struct {
	Type    string               `json:"type"`
	Diff    *domain.SnapshotDiff `json:"diff,omitempty"`
	Summary []domain.SummaryLine `json:"summary,omitempty"`
	Message string               `json:"message,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Each render is emitted as a snapshot diff; input lines may be JSON strings or raw text.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder

	input *lineReader
	mu    sync.Mutex
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
		input:   newLineReader(r),
	}
}

func (h *JSONHandler) emit(ev Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Encoder.Encode(ev)
}

func (h *JSONHandler) Render(ctx context.Context, diff *domain.SnapshotDiff, snap domain.Snapshot) error {
	return h.emit(Event{Type: EventUpdate, Diff: diff})
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		text, err := h.input.Next(ctx)
		if err != nil {
			return "", err
		}

		text = strings.TrimSpace(text)

		// Try to unquote if it's a JSON string
		var val string
		if err := json.Unmarshal([]byte(text), &val); err == nil {
			text = strings.TrimSpace(val)
		}

		clean, err := SanitizeInput(text)
		if err != nil {
			if err := h.SystemOutput(ctx, err.Error()); err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

func (h *JSONHandler) Summary(ctx context.Context, lines []domain.SummaryLine) error {
	return h.emit(Event{Type: EventSummary, Summary: lines})
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.emit(Event{Type: EventSystem, Message: msg})
}
