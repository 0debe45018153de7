package runtime

import "github.com/aretw0/intake/pkg/domain"

// event is an input to the conversation state machine.
type event string

const (
	evAdvance        event = "advance"         // Pop the next step and start revealing it
	evExhausted      event = "exhausted"       // Advance with nothing left to pop
	evRevealedChoice event = "revealed_choice" // Reveal of a choice step finished
	evRevealedText   event = "revealed_text"   // Reveal of a free-text step finished
	evRevealedInfo   event = "revealed_info"   // Reveal of an informational step finished, more pending
	evRevealedLast   event = "revealed_last"   // Reveal of the final informational step finished
	evSubmit         event = "submit"          // An answer was accepted
	evReset          event = "reset"
)

// transitions is the complete transition table. A missing entry is an invalid transition.
var transitions = map[domain.Phase]map[event]domain.Phase{
	domain.PhaseIdle: {
		evAdvance:   domain.PhaseRevealing,
		evExhausted: domain.PhaseDone,
		evReset:     domain.PhaseIdle,
	},
	domain.PhaseRevealing: {
		evRevealedChoice: domain.PhaseAwaitingChoice,
		evRevealedText:   domain.PhaseAwaitingText,
		evRevealedInfo:   domain.PhaseAdvancing,
		evRevealedLast:   domain.PhaseDone,
		evReset:          domain.PhaseIdle,
	},
	domain.PhaseAwaitingChoice: {
		evSubmit: domain.PhaseAdvancing,
		evReset:  domain.PhaseIdle,
	},
	domain.PhaseAwaitingText: {
		evSubmit: domain.PhaseAdvancing,
		evReset:  domain.PhaseIdle,
	},
	domain.PhaseAdvancing: {
		evAdvance:   domain.PhaseRevealing,
		evExhausted: domain.PhaseDone,
		evReset:     domain.PhaseIdle,
	},
	domain.PhaseDone: {
		evReset: domain.PhaseIdle,
	},
}

// next looks up the phase reached from p on ev.
func next(p domain.Phase, ev event) (domain.Phase, bool) {
	to, ok := transitions[p][ev]
	return to, ok
}

// revealEvent picks the event fired when the reveal of step finishes.
func revealEvent(step domain.Step, pending int) event {
	switch step.Kind() {
	case domain.StepChoice:
		return evRevealedChoice
	case domain.StepText:
		return evRevealedText
	}
	if pending == 0 {
		return evRevealedLast
	}
	return evRevealedInfo
}
