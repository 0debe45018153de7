package domain

import "strconv"

// StepKind classifies how a step gates the conversation.
type StepKind string

const (
	// StepInfo displays its text and continues immediately (soft step).
	StepInfo StepKind = "info"
	// StepChoice displays its text and halts until one of its options is selected.
	StepChoice StepKind = "choice"
	// StepText displays its text and halts until free text is submitted.
	StepText StepKind = "text"
)

// Step is one prompt of a conversation script.
// Steps are immutable once a script is started.
type Step struct {
	Text  string `json:"text" yaml:"text" mapstructure:"text"`
	Field string `json:"field,omitempty" yaml:"field,omitempty" mapstructure:"field"`

	// Options turns the step into a choice step. It wins over RequiresInput.
	Options []string `json:"options,omitempty" yaml:"options,omitempty" mapstructure:"options"`

	RequiresInput bool `json:"requires_input,omitempty" yaml:"requires_input,omitempty" mapstructure:"requires_input"`

	// Label is the human name used by the summary panel.
	// Defaults to the capitalized field.
	Label string `json:"label,omitempty" yaml:"label,omitempty" mapstructure:"label"`
}

// Kind reports how the step behaves once its text has been revealed.
func (s Step) Kind() StepKind {
	switch {
	case len(s.Options) > 0:
		return StepChoice
	case s.RequiresInput:
		return StepText
	default:
		return StepInfo
	}
}

// IsInput reports whether the step blocks for an answer.
func (s Step) IsInput() bool {
	return s.Kind() != StepInfo
}

// InputRequest describes the widget the presentation layer should show for the step.
// Returns nil for informational steps.
func (s Step) InputRequest() *InputRequest {
	switch s.Kind() {
	case StepChoice:
		return &InputRequest{
			Type:    InputChoice,
			Field:   s.Field,
			Options: append([]string(nil), s.Options...),
		}
	case StepText:
		return &InputRequest{Type: InputText, Field: s.Field}
	}
	return nil
}

// Script is the ordered list of steps defining one conversation.
type Script []Step

// Clone returns a deep copy so callers cannot mutate a running script.
func (s Script) Clone() Script {
	if s == nil {
		return nil
	}
	out := make(Script, len(s))
	for i, step := range s {
		step.Options = append([]string(nil), step.Options...)
		out[i] = step
	}
	return out
}

// InputSteps returns the steps that collect an answer, in script order.
func (s Script) InputSteps() []Step {
	var out []Step
	for _, step := range s {
		if step.IsInput() {
			out = append(out, step)
		}
	}
	return out
}

// Validate checks the script invariants: it must not be empty and every
// input-bearing step needs a unique, non-empty field.
func (s Script) Validate() error {
	if len(s) == 0 {
		return &ConfigurationError{Index: -1, Reason: "script has no steps"}
	}

	var errs []error
	seen := make(map[string]int)
	for i, step := range s {
		if !step.IsInput() {
			continue
		}
		if step.Field == "" {
			errs = append(errs, &ConfigurationError{Index: i, Reason: "input step has no field"})
			continue
		}
		if first, ok := seen[step.Field]; ok {
			errs = append(errs, &ConfigurationError{
				Index:  i,
				Field:  step.Field,
				Reason: "duplicate field (first used by step " + strconv.Itoa(first) + ")",
			})
			continue
		}
		seen[step.Field] = i
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return &AggregateError{Errors: errs}
}
