package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/intake"
	"github.com/aretw0/intake/internal/presentation/tui"
	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/observability"
	"github.com/aretw0/intake/pkg/reveal"
	"github.com/aretw0/intake/pkg/runner"
)

// RunSession executes a single conversation in the terminal (or as JSON-Lines).
func RunSession(ctx context.Context, opts RunOptions) error {
	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	logger := createLogger(opts.Debug, opts.JSON)

	if !opts.JSON {
		tui.PrintBanner(out, intake.Version)
	}

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	store, closeStore, err := OpenStore(sigCtx, opts.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("Failed to close answer store", "err", err)
		}
	}()

	hooks := domain.LifecycleHooks{}
	if opts.Debug {
		hooks = createDebugHooks(logger)
	}
	var metrics *observability.Metrics
	if opts.MetricsFile != "" {
		metrics = observability.NewMetrics()
		hooks = hooks.Merge(metrics.Hooks())
	}

	// Reveal callbacks are delivered through the loop and run by the runner.
	loop := reveal.NewLoop(64)
	defer loop.Close()

	var scheduler reveal.Scheduler = reveal.Instant{}
	if !opts.Instant && !opts.JSON {
		quantum := opts.Quantum
		if quantum <= 0 {
			quantum = DefaultQuantum
		}
		scheduler = reveal.NewTypewriter(loop, quantum)
	}

	engine, err := createEngine(sigCtx, opts, logger, store, scheduler, hooks)
	if err != nil {
		return err
	}
	logger.Info("Conversation Started", "script", engine.Name, "sink_key", engine.SinkKey())

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(createHandler(opts, in, out)),
		runner.WithLoop(loop),
		runner.WithRestart(opts.Restart),
	)

	runErr := r.Run(sigCtx, engine)

	// If context was canceled (signal received), ensure runErr reflects it
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	if !opts.JSON {
		logCompletion(out, engine.Snapshot(), runErr, sigCtx.Signal())
	}

	if metrics != nil {
		if err := metrics.WriteToTextfile(opts.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Debug("Metrics written", "path", opts.MetricsFile)
	}

	return handleExecutionError(runErr)
}

// createHandler picks the IO strategy. Answers are echoed when input is not a
// terminal, and markdown is rendered only when output is one.
func createHandler(opts RunOptions, in io.Reader, out io.Writer) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(in, out)
	}

	handlerOpts := []runner.TextHandlerOption{
		runner.WithEcho(!isTerminal(in)),
	}
	if isTerminal(out) {
		handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(tui.NewRenderer()))
	}
	return runner.NewTextHandler(in, out, handlerOpts...)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && tui.IsTerminal(f)
}
