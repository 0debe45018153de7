package dsl

import "github.com/aretw0/intake/pkg/domain"

// StepBuilder provides a fluent API for configuring the step just added.
// It forwards Say, Ask, Choice and Build to its Builder so a whole script
// reads as one chain.
type StepBuilder struct {
	step    domain.Step
	builder *Builder
}

// Label sets the summary label of the step.
func (s *StepBuilder) Label(label string) *StepBuilder {
	s.step.Label = label
	return s
}

// Field records the step under field. An informational step with a field
// still never collects an answer.
func (s *StepBuilder) Field(field string) *StepBuilder {
	s.step.Field = field
	return s
}

// Say appends an informational step.
func (s *StepBuilder) Say(text string) *StepBuilder {
	return s.builder.Say(text)
}

// Ask appends a free-text step.
func (s *StepBuilder) Ask(field, text string) *StepBuilder {
	return s.builder.Ask(field, text)
}

// Choice appends a choice step.
func (s *StepBuilder) Choice(field, text string, options ...string) *StepBuilder {
	return s.builder.Choice(field, text, options...)
}

// Build compiles the whole script.
func (s *StepBuilder) Build() (domain.Script, error) {
	return s.builder.Build()
}
