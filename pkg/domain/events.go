package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStepEnter EventType = "step_enter"
	EventStepLeave EventType = "step_leave"
	EventAnswer    EventType = "answer"
	EventReject    EventType = "reject"
	EventComplete  EventType = "complete"
	EventReset     EventType = "reset"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp      time.Time `json:"timestamp"`
	Type           EventType `json:"type"`
	ConversationID string    `json:"conversation_id"`
}

// StepEvent represents entering (reveal started) or leaving (reveal finished) a step.
type StepEvent struct {
	EventBase
	Index int      `json:"index"`
	Field string   `json:"field,omitempty"`
	Kind  StepKind `json:"kind"`
}

// AnswerEvent represents an accepted answer.
type AnswerEvent struct {
	EventBase
	Field string `json:"field"`
	Value string `json:"value"`
}

// RejectEvent represents an operation refused by the engine.
type RejectEvent struct {
	EventBase
	Op    string `json:"op"`
	Phase Phase  `json:"phase"`
	Err   error  `json:"-"`
}

// CompleteEvent is emitted once per completed conversation, after the sink was invoked.
type CompleteEvent struct {
	EventBase
	Answers map[string]string `json:"answers"`
	SaveErr error             `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// All hooks run on the engine's thread of control and must not call back into the engine.
type LifecycleHooks struct {
	OnStepEnter func(context.Context, *StepEvent)
	OnStepLeave func(context.Context, *StepEvent)
	OnAnswer    func(context.Context, *AnswerEvent)
	OnReject    func(context.Context, *RejectEvent)
	OnComplete  func(context.Context, *CompleteEvent)
	OnReset     func(context.Context, *EventBase)
}

// Merge combines hooks so that both sets fire, h first.
func (h LifecycleHooks) Merge(o LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStepEnter: chain(h.OnStepEnter, o.OnStepEnter),
		OnStepLeave: chain(h.OnStepLeave, o.OnStepLeave),
		OnAnswer:    chain(h.OnAnswer, o.OnAnswer),
		OnReject:    chain(h.OnReject, o.OnReject),
		OnComplete:  chain(h.OnComplete, o.OnComplete),
		OnReset:     chain(h.OnReset, o.OnReset),
	}
}

func chain[T any](a, b func(context.Context, T)) func(context.Context, T) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, ev T) {
		a(ctx, ev)
		b(ctx, ev)
	}
}
