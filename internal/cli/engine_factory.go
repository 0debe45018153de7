package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/intake"
	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/ports"
	"github.com/aretw0/intake/pkg/reveal"
	"github.com/aretw0/intake/pkg/script"
)

// BuiltinScriptName labels the built-in printer request script.
const BuiltinScriptName = "printer-request"

// scriptCandidates are looked up, in order, when no script is given.
var scriptCandidates = []string{"script.yaml", "script.yml", "script.json", "steps"}

// ResolveScriptPath returns path when set, otherwise the first script
// candidate found in dir. An empty result selects the built-in script.
func ResolveScriptPath(path, dir string) string {
	if path != "" {
		return path
	}
	for _, name := range scriptCandidates {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(ctx context.Context, opts RunOptions, logger *slog.Logger, sink ports.AnswerSink, scheduler reveal.Scheduler, hooks domain.LifecycleHooks) (*intake.Engine, error) {
	engineOpts := []intake.Option{
		intake.WithLogger(logger),
		intake.WithSink(sink),
		intake.WithScheduler(scheduler),
		intake.WithLifecycleHooks(hooks),
	}
	if opts.Key != "" {
		engineOpts = append(engineOpts, intake.WithSinkKey(opts.Key))
	}

	path := ResolveScriptPath(opts.ScriptPath, ".")
	if path == "" {
		logger.Debug("Using built-in script", "name", BuiltinScriptName)
		engineOpts = append(engineOpts, intake.WithName(BuiltinScriptName))
		return intake.New(script.PrinterRequest(), engineOpts...)
	}

	logger.Debug("Loading script", "path", path)
	engine, err := intake.Open(ctx, path, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
