package runner

import (
	"context"

	"github.com/aretw0/intake/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (terminal) and JSON (structured) modes.
// The Runner calls every method except Input from its own goroutine;
// Input runs on a helper goroutine and must honour ctx.
type IOHandler interface {
	// Render presents what changed since the previous snapshot.
	// snap is the full snapshot the diff leads to.
	Render(ctx context.Context, diff *domain.SnapshotDiff, snap domain.Snapshot) error

	// Input reads a response from the user. It returns io.EOF when input is exhausted.
	Input(ctx context.Context) (string, error)

	// Summary presents the answers of a completed conversation.
	Summary(ctx context.Context, lines []domain.SummaryLine) error

	// SystemOutput presents a meta-message to the user (validation hints, status updates).
	// This is distinct from transcript rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the runner package.
type ContentRenderer func(string) (string, error)
