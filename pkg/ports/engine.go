package ports

import (
	"context"

	"github.com/aretw0/intake/pkg/domain"
)

// Conversation is the presentation boundary of the engine.
// Presentation layers read Snapshot and call the mutating entry points;
// they never touch conversation state directly.
type Conversation interface {
	// Snapshot returns a read-only copy of the conversation.
	Snapshot() domain.Snapshot

	// Advance reveals the next step. It is a no-op once the conversation is done.
	Advance(ctx context.Context) error

	// SubmitAnswer answers the step awaiting input.
	SubmitAnswer(ctx context.Context, value string) error

	// SelectOption answers a choice step. It is equivalent to SubmitAnswer.
	SelectOption(ctx context.Context, option string) error

	// Reset restarts the conversation from the first step of the original script.
	Reset(ctx context.Context) error
}
