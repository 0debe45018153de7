package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/ports"
	"github.com/aretw0/intake/pkg/reveal"
)

// Engine is what the Runner drives: the conversation boundary plus its summary.
type Engine interface {
	ports.Conversation
	Summary() []domain.SummaryLine
}

// Commands understood by the runner regardless of the active prompt.
const (
	CommandExit    = "exit"
	CommandQuit    = "quit"
	CommandRestart = "restart"
)

// Runner handles the execution loop of a conversation using provided IO.
// It owns the engine: reveal callbacks, user input and rendering are all
// serialised on the goroutine that calls Run.
type Runner struct {
	Handler      IOHandler
	Logger       *slog.Logger
	Interceptor  InputInterceptor
	Loop         *reveal.Loop
	AllowRestart bool
}

// NewRunner creates a new Runner with default settings.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Interceptor: OptionResolver(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type session struct {
	r       *Runner
	eng     Engine
	handler IOHandler
	logger  *slog.Logger

	last       *domain.Snapshot
	summarized string // conversation ID whose summary was shown
}

// Run drives eng until the conversation completes, the user exits, input is
// exhausted or ctx is cancelled. A conversation still Idle is started.
// Exhausted input and an explicit exit are not errors.
func (r *Runner) Run(ctx context.Context, eng Engine) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := &session{
		r:       r,
		eng:     eng,
		handler: r.Handler,
		logger:  r.Logger,
	}
	if s.handler == nil {
		s.handler = NewTextHandler(nil, nil)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var events <-chan func()
	if r.Loop != nil {
		events = r.Loop.Events()
	}

	if snap := eng.Snapshot(); snap.Phase == domain.PhaseIdle {
		if err := eng.Advance(ctx); err != nil {
			return fmt.Errorf("failed to start conversation: %w", err)
		}
	}

	reads := make(chan inputResult, 1)
	reading := false

	for {
		snap, err := s.render(ctx)
		if err != nil {
			return err
		}

		if snap.Completed() && !r.AllowRestart {
			s.logger.Debug("Conversation Completed", "conversation_id", snap.ConversationID)
			return nil
		}

		if (snap.AwaitingInput() || snap.Completed()) && !reading {
			reading = true
			go func() {
				text, err := s.handler.Input(ctx)
				reads <- inputResult{text: text, err: err}
			}()
		} else if snap.Phase == domain.PhaseRevealing && events == nil {
			return errors.New("reveal in progress but the runner has no event loop")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case fn, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			fn()

		case res := <-reads:
			reading = false
			if res.err != nil {
				if errors.Is(res.err, io.EOF) {
					s.logger.Debug("Input Exhausted")
					return nil
				}
				return fmt.Errorf("input error: %w", res.err)
			}

			stop, err := s.handle(ctx, snap, strings.TrimSpace(res.text))
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}
	}
}

// render pushes whatever changed since the last render to the handler and
// returns the current snapshot. The summary is shown once per conversation.
func (s *session) render(ctx context.Context) (domain.Snapshot, error) {
	snap := s.eng.Snapshot()
	if diff := domain.Diff(s.last, &snap); diff != nil {
		if err := s.handler.Render(ctx, diff, snap); err != nil {
			return snap, fmt.Errorf("render error: %w", err)
		}
	}
	s.last = &snap

	if snap.Completed() && s.summarized != snap.ConversationID {
		s.summarized = snap.ConversationID
		if snap.SaveErr != nil {
			s.logger.Error("Failed to save answers", "err", snap.SaveErr)
			if err := s.handler.SystemOutput(ctx, fmt.Sprintf("Your answers could not be saved: %v", snap.SaveErr)); err != nil {
				return snap, err
			}
		}
		if err := s.handler.Summary(ctx, s.eng.Summary()); err != nil {
			return snap, fmt.Errorf("render error: %w", err)
		}
		if s.r.AllowRestart {
			if err := s.handler.SystemOutput(ctx, "Type 'restart' to start over or 'exit' to leave."); err != nil {
				return snap, err
			}
		}
	}
	return snap, nil
}

// handle applies one line of input. It reports whether the runner should stop.
func (s *session) handle(ctx context.Context, snap domain.Snapshot, text string) (bool, error) {
	switch strings.ToLower(text) {
	case CommandExit, CommandQuit:
		s.logger.Debug("Exit Requested")
		return true, nil
	case CommandRestart:
		if s.r.AllowRestart {
			return false, s.restart(ctx)
		}
	}

	if snap.Completed() {
		return false, s.handler.SystemOutput(ctx, "The conversation is over. Type 'restart' to start over or 'exit' to leave.")
	}

	value := text
	if s.r.Interceptor != nil {
		var err error
		value, err = s.r.Interceptor(ctx, snap, text)
		if errors.Is(err, ErrInputRejected) {
			return false, s.handler.SystemOutput(ctx, rejection(err))
		}
		if err != nil {
			return false, fmt.Errorf("input middleware error: %w", err)
		}
	}

	var err error
	if snap.Prompt != nil && snap.Prompt.Type == domain.InputChoice {
		err = s.eng.SelectOption(ctx, value)
	} else {
		err = s.eng.SubmitAnswer(ctx, value)
	}

	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, domain.ErrEmptySubmission):
		return false, s.handler.SystemOutput(ctx, "An answer is required.")
	case errors.Is(err, domain.ErrInvalidTransition):
		// Input raced with a phase change; the next render shows the current prompt.
		s.logger.Warn("Input Ignored", "err", err)
		return false, nil
	default:
		return false, fmt.Errorf("submit error: %w", err)
	}
}

func (s *session) restart(ctx context.Context) error {
	s.logger.Debug("Restart Requested")
	if err := s.eng.Reset(ctx); err != nil {
		return fmt.Errorf("reset error: %w", err)
	}
	if err := s.eng.Advance(ctx); err != nil {
		return fmt.Errorf("failed to start conversation: %w", err)
	}
	return nil
}

func rejection(err error) string {
	msg := strings.TrimPrefix(err.Error(), ErrInputRejected.Error()+": ")
	if msg == "" {
		return "Input not accepted."
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
