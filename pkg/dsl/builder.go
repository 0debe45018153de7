package dsl

import (
	"fmt"

	"github.com/aretw0/intake/pkg/adapters/memory"
	"github.com/aretw0/intake/pkg/domain"
)

// Builder manages the script construction. Steps are kept in insertion order.
type Builder struct {
	steps []*StepBuilder
}

// New creates a new script builder.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) add(step domain.Step) *StepBuilder {
	sb := &StepBuilder{step: step, builder: b}
	b.steps = append(b.steps, sb)
	return sb
}

// Say appends an informational step, revealed and then skipped past.
func (b *Builder) Say(text string) *StepBuilder {
	return b.add(domain.Step{Text: text})
}

// Ask appends a free-text step whose answer is stored under field.
func (b *Builder) Ask(field, text string) *StepBuilder {
	return b.add(domain.Step{Text: text, Field: field, RequiresInput: true})
}

// Choice appends a step answered by selecting one of options.
func (b *Builder) Choice(field, text string, options ...string) *StepBuilder {
	return b.add(domain.Step{Text: text, Field: field, Options: options})
}

// Build compiles and validates the script.
func (b *Builder) Build() (domain.Script, error) {
	s := make(domain.Script, 0, len(b.steps))
	for _, sb := range b.steps {
		s = append(s, sb.step)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// Loader compiles the script into a memory loader.
func (b *Builder) Loader() (*memory.Loader, error) {
	s, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return memory.NewLoader(s), nil
}
