package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoInformation is shown in a summary for fields that were never answered.
const NoInformation = "No information provided"

// SummaryLine is one row of the summary panel.
type SummaryLine struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summarize lists every input-bearing step of the script with its answer,
// in script order. Missing answers are reported as NoInformation.
func Summarize(script Script, answers map[string]string) []SummaryLine {
	inputs := script.InputSteps()
	lines := make([]SummaryLine, 0, len(inputs))
	for _, step := range inputs {
		value := strings.TrimSpace(answers[step.Field])
		if value == "" {
			value = NoInformation
		}
		lines = append(lines, SummaryLine{
			Field: step.Field,
			Label: labelFor(step),
			Value: value,
		})
	}
	return lines
}

func labelFor(step Step) string {
	if step.Label != "" {
		return step.Label
	}
	r, size := utf8.DecodeRuneInString(step.Field)
	if r == utf8.RuneError {
		return step.Field
	}
	return string(unicode.ToUpper(r)) + strings.ReplaceAll(step.Field[size:], "_", " ")
}
