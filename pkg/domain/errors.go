package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidScript is matched by every ConfigurationError.
	ErrInvalidScript = errors.New("invalid script")

	// ErrInvalidTransition is returned when an operation is not allowed in the current phase.
	// The state is left untouched.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrEmptySubmission is returned when a blank answer is submitted.
	ErrEmptySubmission = errors.New("empty submission")

	// ErrAnswersNotFound is returned by sink readers when no answers exist for a key.
	ErrAnswersNotFound = errors.New("answers not found")
)

// ConfigurationError describes a malformed script.
type ConfigurationError struct {
	Index  int    // Step index, or -1 for script-wide problems
	Field  string // Offending field, if any
	Reason string
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("%s: %s", ErrInvalidScript, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("%s: step %d field %q: %s", ErrInvalidScript, e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: step %d: %s", ErrInvalidScript, e.Index, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidScript
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns err itself, or nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	if err == nil {
		return nil
	}
	return []error{err}
}

// TransitionError carries the phase and operation that were rejected.
type TransitionError struct {
	Op    string
	Phase Phase
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s not allowed while %s", ErrInvalidTransition, e.Op, e.Phase)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
