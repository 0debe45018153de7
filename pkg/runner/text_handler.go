package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/muesli/termenv"
)

// TextHandler implements the standard text-based interface.
// Agent messages are printed as they grow, so a typewriter reveal shows up
// as typing in the terminal.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer

	// Echo prints the user's answers into the transcript. Enable it when input
	// does not come from a terminal (piped, scripted), where nothing else shows it.
	Echo bool

	input *lineReader
	out   *termenv.Output

	current int    // transcript index of the message on the open line
	shown   string // text already printed for it
	open    bool   // an agent line is still being written
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer used for the summary.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithEcho configures whether user answers are echoed.
func WithEcho(echo bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Echo = echo
	}
}

// NewTextHandler creates a handler for standard text IO.
// Nil reader and writer default to Stdin and Stdout.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:  w,
		input:   newLineReader(r),
		out:     termenv.NewOutput(w),
		current: -1,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Render(ctx context.Context, diff *domain.SnapshotDiff, snap domain.Snapshot) error {
	if diff.Reset {
		h.closeLine()
		h.current, h.shown = -1, ""
		fmt.Fprintln(h.Writer, h.out.String("--- new conversation ---").Faint())
	}

	if d := diff.Transcript; d != nil {
		for i, msg := range d.Messages {
			h.renderMessage(d.From+i, msg)
		}
	}

	if snap.Phase != domain.PhaseRevealing {
		h.closeLine()
	}

	if p := diff.Prompt; p != nil && p.Type == domain.InputChoice {
		for i, opt := range p.Options {
			fmt.Fprintf(h.Writer, "  %s %s\n", h.out.String(fmt.Sprintf("%d)", i+1)).Bold(), opt)
		}
	}
	return nil
}

func (h *TextHandler) renderMessage(index int, msg domain.Message) {
	if msg.Speaker == domain.SpeakerUser {
		h.closeLine()
		h.current, h.shown = index, msg.Text
		if h.Echo {
			fmt.Fprintf(h.Writer, "%s %s\n", h.label("You:", "#f472b6"), msg.Text)
		}
		return
	}

	if index != h.current {
		h.closeLine()
		fmt.Fprintf(h.Writer, "%s ", h.label("Agent:", "#818cf8"))
		h.current, h.shown, h.open = index, "", true
	}

	if strings.HasPrefix(msg.Text, h.shown) {
		fmt.Fprint(h.Writer, msg.Text[len(h.shown):])
	} else {
		// The message was rewritten rather than extended; start the line over.
		fmt.Fprintf(h.Writer, "\n%s %s", h.label("Agent:", "#818cf8"), msg.Text)
	}
	h.shown = msg.Text
}

func (h *TextHandler) closeLine() {
	if h.open {
		fmt.Fprintln(h.Writer)
		h.open = false
	}
}

func (h *TextHandler) label(text, color string) termenv.Style {
	return h.out.String(text).Foreground(h.out.Color(color)).Bold()
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	for {
		// Only show prompt if context is not yet done
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		text, err := h.input.Next(ctx)
		if err != nil {
			return "", err
		}

		clean, err := SanitizeInput(strings.TrimSpace(text))
		if err != nil {
			fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
			continue
		}
		return clean, nil
	}
}

// Summary prints the answers as a markdown table, rendered when a Renderer is set.
func (h *TextHandler) Summary(ctx context.Context, lines []domain.SummaryLine) error {
	h.closeLine()

	output := SummaryMarkdown(lines)
	if h.Renderer != nil {
		if rendered, err := h.Renderer(output); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(h.Writer, strings.TrimSpace(output))
	return nil
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	h.closeLine()
	fmt.Fprintf(h.Writer, "%s %s\n", h.out.String("[System]").Faint(), msg)
	return nil
}

// SummaryMarkdown formats summary lines as a markdown table.
func SummaryMarkdown(lines []domain.SummaryLine) string {
	var b strings.Builder
	b.WriteString("## Summary\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("| --- | --- |\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(line.Label), escapeCell(line.Value))
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
