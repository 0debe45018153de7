package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/intake/internal/logging"
	"github.com/aretw0/intake/pkg/domain"
)

// SignalContext is cancelled on SIGINT or SIGTERM and remembers which
// signal did it, so the session can tell Ctrl+C from a termination.
type SignalContext struct {
	context.Context
	Cancel func()

	mu  sync.Mutex
	sig os.Signal
}

// NewSignalContext starts watching for signals until the returned context is done.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, Cancel: cancel}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(signals)
		select {
		case sig := <-signals:
			sc.mu.Lock()
			sc.sig = sig
			sc.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()
	return sc
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the Stdout conversation).
// JSON mode logs as JSON so a consumer can parse both streams the same way.
func createLogger(debug, jsonMode bool) *slog.Logger {
	switch {
	case !debug:
		return logging.NewNop()
	case jsonMode:
		return logging.NewJSON(os.Stderr, slog.LevelDebug)
	default:
		return logging.New(slog.LevelDebug)
	}
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Enter Step", "index", e.Index, "field", e.Field, "kind", e.Kind)
		},
		OnStepLeave: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Leave Step", "index", e.Index, "field", e.Field)
		},
		OnAnswer: func(ctx context.Context, e *domain.AnswerEvent) {
			logger.Debug("Answer Recorded", "field", e.Field)
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			logger.Debug("Operation Rejected", "op", e.Op, "err", e.Err)
		},
		OnComplete: func(ctx context.Context, e *domain.CompleteEvent) {
			if e.SaveErr != nil {
				logger.Debug("Conversation Completed (Save Failed)", "answers", len(e.Answers), "err", e.SaveErr)
			} else {
				logger.Debug("Conversation Completed", "answers", len(e.Answers))
			}
		},
		OnReset: func(ctx context.Context, e *domain.EventBase) {
			logger.Debug("Conversation Reset")
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, snap domain.Snapshot, err error, sig os.Signal) {
	switch {
	case err == nil && snap.Completed():
		return
	case err == nil:
		printSystemMessage(w, "Left with %d answer(s) unsaved.", len(snap.Answers))
	case isInterrupted(err) && sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted with %d answer(s) unsaved.", len(snap.Answers))
	case isInterrupted(err) && sig != nil:
		fmt.Fprintln(w)
		printSystemMessage(w, "Terminated with %d answer(s) unsaved.", len(snap.Answers))
	}
}
