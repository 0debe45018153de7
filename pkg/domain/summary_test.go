package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	script := Script{
		{Text: "Hello", Field: "issue", Options: []string{"Printer Fix"}},
		{Text: "Name?", Field: "name", RequiresInput: true},
		{Text: "Phone?", Field: "phone_number", RequiresInput: true},
		{Text: "Email?", Field: "email", RequiresInput: true, Label: "E-mail"},
		{Text: "Thanks", Field: "summary"},
	}

	lines := Summarize(script, map[string]string{"issue": "Printer Fix", "name": "  "})

	assert.Equal(t, []SummaryLine{
		{Field: "issue", Label: "Issue", Value: "Printer Fix"},
		{Field: "name", Label: "Name", Value: NoInformation},
		{Field: "phone_number", Label: "Phone number", Value: NoInformation},
		{Field: "email", Label: "E-mail", Value: NoInformation},
	}, lines)
}
