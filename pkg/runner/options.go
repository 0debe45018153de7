package runner

import (
	"log/slog"

	"github.com/aretw0/intake/pkg/reveal"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithInterceptor configures the input middleware.
// It replaces the default OptionResolver; chain it explicitly to keep it.
func WithInterceptor(interceptor InputInterceptor) Option {
	return func(r *Runner) {
		r.Interceptor = interceptor
	}
}

// WithLoop sets the event loop that delivers reveal callbacks.
// It must be the same loop the engine's Typewriter was built on.
func WithLoop(loop *reveal.Loop) Option {
	return func(r *Runner) {
		r.Loop = loop
	}
}

// WithRestart keeps the runner alive after completion so the user can type
// "restart" to start over.
func WithRestart(allow bool) Option {
	return func(r *Runner) {
		r.AllowRestart = allow
	}
}
