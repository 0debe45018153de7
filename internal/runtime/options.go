package runtime

import (
	"log/slog"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/ports"
	"github.com/aretw0/intake/pkg/reveal"
)

// DefaultSinkKey is the key answers are saved under unless configured otherwise.
const DefaultSinkKey = domain.DefaultSinkKey

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithScheduler sets the reveal scheduler. Defaults to reveal.Instant.
func WithScheduler(s reveal.Scheduler) EngineOption {
	return func(e *Engine) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithSink sets the sink that receives the finished answers.
func WithSink(sink ports.AnswerSink) EngineOption {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithSinkKey sets the fixed key answers are saved under.
func WithSinkKey(key string) EngineOption {
	return func(e *Engine) {
		if key != "" {
			e.sinkKey = key
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithIDGenerator sets the function producing conversation IDs.
func WithIDGenerator(fn func() string) EngineOption {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}
