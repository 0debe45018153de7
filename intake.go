package intake

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/intake/internal/runtime"
	loamAdapter "github.com/aretw0/intake/pkg/adapters/loam"
	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/ports"
	"github.com/aretw0/intake/pkg/reveal"
	"github.com/aretw0/intake/pkg/script"
)

// Version is the current release, overridden at build time via -ldflags.
var Version = "dev"

// Engine is the high-level entry point for the intake library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime     *runtime.Engine
	loader      ports.ScriptLoader
	runtimeOpts []runtime.EngineOption
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	Name        string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom ScriptLoader, bypassing path based resolution in Open.
func WithLoader(l ports.ScriptLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithName labels the script in logs.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// WithSink sets where the finished answers are saved.
func WithSink(sink ports.AnswerSink) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithSink(sink))
	}
}

// WithSinkKey configures the key answers are saved under (default: domain.DefaultSinkKey).
func WithSinkKey(key string) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithSinkKey(key))
	}
}

// WithScheduler sets how agent text is revealed (default: reveal.Instant).
func WithScheduler(s reveal.Scheduler) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithScheduler(s))
	}
}

// WithIDGenerator overrides how conversation IDs are minted.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithIDGenerator(fn))
	}
}

// New starts a conversation over an in-memory script.
// It fails with a *domain.ConfigurationError when the script is invalid.
func New(s domain.Script, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	return eng.start(s)
}

// Open resolves a script from disk and starts a conversation over it.
// A directory is read as a Loam repository of markdown steps, anything else
// as a YAML or JSON script file. If WithLoader is provided, path only labels
// the script and may be empty.
func Open(ctx context.Context, path string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom loader is provided")
		}
		loader, err := resolveLoader(path)
		if err != nil {
			return nil, err
		}
		eng.loader = loader
	}

	s, err := eng.loader.LoadScript(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load script: %w", err)
	}

	// Script documents may name themselves and their sink key; options still win.
	if doc, ok := eng.loader.(describedScript); ok {
		if eng.Name == "" {
			eng.Name = doc.Name()
		}
		if doc.Key() != "" {
			eng.runtimeOpts = append([]runtime.EngineOption{runtime.WithSinkKey(doc.Key())}, eng.runtimeOpts...)
		}
	}
	if eng.Name == "" && path != "" {
		eng.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return eng.start(s)
}

type describedScript interface {
	Name() string
	Key() string
}

func resolveLoader(path string) (ports.ScriptLoader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat script: %w", err)
	}
	if info.IsDir() {
		return loamAdapter.Open(absPath)
	}
	return script.NewFileLoader(absPath), nil
}

func (e *Engine) start(s domain.Script) (*Engine, error) {
	// Ensure logger is initialized (so we don't pass nil to runtime)
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.Name != "" {
		e.logger = e.logger.With("script", e.Name)
	}

	opts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithLogger(e.logger),
	}
	opts = append(opts, e.runtimeOpts...)

	rt, err := runtime.NewEngine(s, opts...)
	if err != nil {
		return nil, err
	}
	e.runtime = rt
	return e, nil
}

// Advance reveals the next step. It is a no-op once the conversation is complete.
func (e *Engine) Advance(ctx context.Context) error {
	return e.runtime.Advance(ctx)
}

// SubmitAnswer answers the step awaiting input.
func (e *Engine) SubmitAnswer(ctx context.Context, value string) error {
	return e.runtime.SubmitAnswer(ctx, value)
}

// SelectOption answers a choice step.
func (e *Engine) SelectOption(ctx context.Context, option string) error {
	return e.runtime.SelectOption(ctx, option)
}

// Reset restarts the conversation from the first step.
func (e *Engine) Reset(ctx context.Context) error {
	return e.runtime.Reset(ctx)
}

// Snapshot returns a read-only view of the conversation.
func (e *Engine) Snapshot() domain.Snapshot {
	return e.runtime.Snapshot()
}

// Summary pairs every input step with the collected answer.
func (e *Engine) Summary() []domain.SummaryLine {
	return e.runtime.Summary()
}

// Script returns a copy of the script being run.
func (e *Engine) Script() domain.Script {
	return e.runtime.Script()
}

// SinkKey returns the key answers are saved under.
func (e *Engine) SinkKey() string {
	return e.runtime.SinkKey()
}

// Loader returns the ScriptLoader used by Open, or nil for engines built by New.
func (e *Engine) Loader() ports.ScriptLoader {
	return e.loader
}
