package dto

import (
	"strings"

	"github.com/aretw0/intake/pkg/domain"
)

// StepMetadata is the on-disk shape of a script step, shared by the YAML/JSON
// parser and the Loam markdown loader.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type StepMetadata struct {
	Text          string   `json:"text" yaml:"text" mapstructure:"text"`
	Field         string   `json:"field" yaml:"field,omitempty" mapstructure:"field"`
	Label         string   `json:"label" yaml:"label,omitempty" mapstructure:"label"`
	Options       []string `json:"options" yaml:"options,omitempty" mapstructure:"options"`
	RequiresInput bool     `json:"requires_input" yaml:"requires_input,omitempty" mapstructure:"requires_input"`

	// WaitForUserInput is accepted as an alias of RequiresInput.
	WaitForUserInput bool `json:"wait_for_user_input" yaml:"wait_for_user_input,omitempty" mapstructure:"wait_for_user_input"`
}

// Step converts the metadata into a domain step.
// body is used as the step text when Text is empty (markdown documents).
func (m StepMetadata) Step(body string) domain.Step {
	text := m.Text
	if text == "" {
		text = strings.TrimSpace(body)
	}

	var options []string
	if len(m.Options) > 0 {
		options = append([]string(nil), m.Options...)
	}

	return domain.Step{
		Text:          text,
		Field:         m.Field,
		Label:         m.Label,
		Options:       options,
		RequiresInput: m.RequiresInput || m.WaitForUserInput,
	}
}

// ScriptDocument is the root of a YAML/JSON script file.
type ScriptDocument struct {
	Name  string         `json:"name" yaml:"name,omitempty" mapstructure:"name"`
	Key   string         `json:"key" yaml:"key,omitempty" mapstructure:"key"`
	Steps []StepMetadata `json:"steps" yaml:"steps" mapstructure:"steps"`
}

// FromScript converts a domain script back into its document form.
func FromScript(name, key string, s domain.Script) ScriptDocument {
	doc := ScriptDocument{Name: name, Key: key, Steps: make([]StepMetadata, 0, len(s))}
	for _, step := range s {
		doc.Steps = append(doc.Steps, StepMetadata{
			Text:          step.Text,
			Field:         step.Field,
			Label:         step.Label,
			Options:       step.Options,
			RequiresInput: step.RequiresInput,
		})
	}
	return doc
}
