package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/ports"
	"github.com/aretw0/intake/pkg/reveal"
	"github.com/google/uuid"
)

// Engine is the conversation state machine.
//
// It is not safe for concurrent use: every call, and every reveal callback,
// must happen on the same logical thread of control (see reveal.Loop).
type Engine struct {
	script    domain.Script
	scheduler reveal.Scheduler
	sink      ports.AnswerSink
	sinkKey   string
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	newID     func() string

	// Conversation state, reinitialised by Reset.
	id         string
	phase      domain.Phase
	pending    domain.Script
	transcript []domain.Message
	answers    map[string]string
	awaiting   *domain.Step
	saveErr    error

	// generation tags reveal callbacks; Reset bumps it so stale ones are dropped.
	generation   uint64
	cancelReveal func()
}

// Compile-time check that Engine satisfies the presentation boundary.
var _ ports.Conversation = (*Engine)(nil)

// NewEngine validates the script and creates a conversation in the Idle phase
// with every step pending. It fails with a *domain.ConfigurationError when the
// script is empty or its input fields are missing or duplicated.
func NewEngine(script domain.Script, opts ...EngineOption) (*Engine, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		script:    script.Clone(),
		scheduler: reveal.Instant{},
		sinkKey:   DefaultSinkKey,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.init()
	return e, nil
}

func (e *Engine) init() {
	e.id = e.newID()
	e.phase = domain.PhaseIdle
	e.pending = slices.Clone(e.script)
	e.transcript = nil
	e.answers = make(map[string]string)
	e.awaiting = nil
	e.saveErr = nil
}

// Advance pops the next step and starts revealing it.
// Once the reveal completes the engine either waits for input, advances again
// (informational step), or completes the conversation (script exhausted).
// Calling Advance after completion is a no-op.
func (e *Engine) Advance(ctx context.Context) error {
	if e.phase == domain.PhaseDone {
		return nil
	}

	ev := evAdvance
	if len(e.pending) == 0 {
		ev = evExhausted
	}
	to, ok := next(e.phase, ev)
	if !ok {
		return e.reject(ctx, "advance", &domain.TransitionError{Op: "advance", Phase: e.phase})
	}
	if ev == evExhausted {
		e.phase = to
		e.complete(ctx)
		return nil
	}

	step := e.pending[0]
	e.pending = e.pending[1:]
	index := len(e.script) - len(e.pending) - 1

	e.phase = to
	e.transcript = append(e.transcript, domain.Message{Speaker: domain.SpeakerAgent})
	slot := len(e.transcript) - 1
	gen := e.generation

	e.log().Debug("Reveal Step", "index", index, "field", step.Field, "kind", step.Kind())
	if e.hooks.OnStepEnter != nil {
		e.hooks.OnStepEnter(ctx, e.stepEvent(domain.EventStepEnter, index, step))
	}

	finished := false
	cancel := e.scheduler.Reveal(step.Text,
		func(prefix string) {
			if gen != e.generation {
				return
			}
			e.transcript[slot].Text = prefix
		},
		func() {
			finished = true
			if gen != e.generation {
				return
			}
			e.cancelReveal = nil
			e.transcript[slot].Text = step.Text
			e.revealed(ctx, index, step)
		},
	)
	if !finished {
		e.cancelReveal = cancel
	}
	return nil
}

// revealed is the continuation of Advance, run once the step text is fully shown.
func (e *Engine) revealed(ctx context.Context, index int, step domain.Step) {
	ev := revealEvent(step, len(e.pending))
	to, ok := next(e.phase, ev)
	if !ok {
		// Only reachable if the phase was changed behind the reveal's back.
		e.log().Error("Unexpected reveal completion", "phase", e.phase, "event", ev)
		return
	}
	e.phase = to
	if ev == evRevealedChoice || ev == evRevealedText {
		e.awaiting = &step
	}

	gen := e.generation
	if e.hooks.OnStepLeave != nil {
		e.hooks.OnStepLeave(ctx, e.stepEvent(domain.EventStepLeave, index, step))
	}
	if gen != e.generation {
		// The hook reset the conversation.
		return
	}

	switch ev {
	case evRevealedChoice, evRevealedText:
		e.log().Debug("Awaiting Input", "field", step.Field, "kind", step.Kind())
	case evRevealedInfo:
		if err := e.Advance(ctx); err != nil {
			e.log().Error("Auto-advance failed", "err", err)
		}
	case evRevealedLast:
		e.complete(ctx)
	}
}

// SubmitAnswer records value for the step awaiting input and advances.
// Blank values are rejected with domain.ErrEmptySubmission; calls outside an
// awaiting phase are rejected with domain.ErrInvalidTransition. Rejections
// leave the conversation untouched.
func (e *Engine) SubmitAnswer(ctx context.Context, value string) error {
	return e.submit(ctx, "submit_answer", value)
}

// SelectOption answers a choice step. It is equivalent to SubmitAnswer.
func (e *Engine) SelectOption(ctx context.Context, option string) error {
	return e.submit(ctx, "select_option", option)
}

func (e *Engine) submit(ctx context.Context, op, value string) error {
	to, ok := next(e.phase, evSubmit)
	if !ok || e.awaiting == nil {
		return e.reject(ctx, op, &domain.TransitionError{Op: op, Phase: e.phase})
	}
	if strings.TrimSpace(value) == "" {
		return e.reject(ctx, op, fmt.Errorf("%w: field %q", domain.ErrEmptySubmission, e.awaiting.Field))
	}

	field := e.awaiting.Field
	e.transcript = append(e.transcript, domain.Message{Speaker: domain.SpeakerUser, Text: value})
	e.answers[field] = value
	e.awaiting = nil
	e.phase = to

	e.log().Debug("Answer Recorded", "field", field)
	if e.hooks.OnAnswer != nil {
		e.hooks.OnAnswer(ctx, &domain.AnswerEvent{
			EventBase: e.base(domain.EventAnswer),
			Field:     field,
			Value:     value,
		})
	}

	return e.Advance(ctx)
}

// complete hands the answers to the sink. It runs exactly once per
// conversation, right after the transition into PhaseDone.
// A sink failure is recorded as returned by the sink and does not roll the
// conversation back.
func (e *Engine) complete(ctx context.Context) {
	answers := maps.Clone(e.answers)
	if e.sink != nil {
		if err := e.sink.Save(ctx, e.sinkKey, answers); err != nil {
			e.saveErr = err
			e.log().Error("Save Failed", "key", e.sinkKey, "err", err)
		} else {
			e.log().Info("Answers Saved", "key", e.sinkKey, "fields", len(answers))
		}
	}

	e.log().Debug("Conversation Complete", "answers", len(answers))
	if e.hooks.OnComplete != nil {
		e.hooks.OnComplete(ctx, &domain.CompleteEvent{
			EventBase: e.base(domain.EventComplete),
			Answers:   answers,
			SaveErr:   e.saveErr,
		})
	}
}

// Reset cancels any in-flight reveal and restarts the conversation from the
// first step of the original script. The new conversation is Idle.
func (e *Engine) Reset(ctx context.Context) error {
	if e.cancelReveal != nil {
		e.cancelReveal()
		e.cancelReveal = nil
	}
	e.generation++

	to, _ := next(e.phase, evReset)
	previous := e.id
	e.init()
	e.phase = to

	e.log().Debug("Conversation Reset", "previous_id", previous)
	if e.hooks.OnReset != nil {
		base := e.base(domain.EventReset)
		e.hooks.OnReset(ctx, &base)
	}
	return nil
}

func (e *Engine) reject(ctx context.Context, op string, err error) error {
	e.log().Warn("Operation Rejected", "op", op, "phase", e.phase, "err", err)
	if e.hooks.OnReject != nil {
		e.hooks.OnReject(ctx, &domain.RejectEvent{
			EventBase: e.base(domain.EventReject),
			Op:        op,
			Phase:     e.phase,
			Err:       err,
		})
	}
	return err
}

// Snapshot returns a read-only copy of the conversation.
func (e *Engine) Snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		ConversationID: e.id,
		Phase:          e.phase,
		Transcript:     slices.Clone(e.transcript),
		Answers:        maps.Clone(e.answers),
		Pending:        len(e.pending),
		SaveErr:        e.saveErr,
	}
	if e.awaiting != nil {
		snap.Prompt = e.awaiting.InputRequest()
	}
	return snap
}

// Script returns a copy of the original script.
func (e *Engine) Script() domain.Script {
	return e.script.Clone()
}

// Summary lists every input-bearing step with its answer.
func (e *Engine) Summary() []domain.SummaryLine {
	return domain.Summarize(e.script, e.answers)
}

// SinkKey returns the key answers are saved under.
func (e *Engine) SinkKey() string {
	return e.sinkKey
}

func (e *Engine) log() *slog.Logger {
	return e.logger.With("conversation_id", e.id)
}

func (e *Engine) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp:      time.Now(),
		Type:           t,
		ConversationID: e.id,
	}
}

func (e *Engine) stepEvent(t domain.EventType, index int, step domain.Step) *domain.StepEvent {
	return &domain.StepEvent{
		EventBase: e.base(t),
		Index:     index,
		Field:     step.Field,
		Kind:      step.Kind(),
	}
}
