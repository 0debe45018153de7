package ports

import "context"

// AnswerSink is the single capability the engine needs to persist a finished conversation.
// Save is invoked at most once per completed conversation, with a fixed key.
// Implementations resolve concurrent writers to the same key as last-write-wins.
type AnswerSink interface {
	Save(ctx context.Context, key string, answers map[string]string) error
}

// AnswerStore extends AnswerSink with a read path for tooling.
type AnswerStore interface {
	AnswerSink

	// Load retrieves the answers stored under key.
	// Returns domain.ErrAnswersNotFound if nothing was saved.
	Load(ctx context.Context, key string) (map[string]string, error)

	// Delete removes the answers stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every key with stored answers.
	List(ctx context.Context) ([]string, error)
}

// SinkFunc adapts a function to the AnswerSink interface.
type SinkFunc func(ctx context.Context, key string, answers map[string]string) error

// Save implements AnswerSink.
func (f SinkFunc) Save(ctx context.Context, key string, answers map[string]string) error {
	return f(ctx, key, answers)
}
