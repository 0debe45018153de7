package script

import "github.com/aretw0/intake/pkg/domain"

// PrinterRequestKey is the sink key the printer request answers are saved under.
const PrinterRequestKey = domain.DefaultSinkKey

// PrinterRequest returns the built-in printer support script.
//
// The first step carries both options and requires_input; options win, so it
// is a choice step.
func PrinterRequest() domain.Script {
	return domain.Script{
		{
			Text:          "Hello! How can I help you today?",
			Field:         "issue",
			Options:       []string{"Printer Fix", "Text", "op"},
			RequiresInput: true,
		},
		{
			Text:    "Please select your printer brand.",
			Field:   "brand",
			Options: []string{"HP", "Canon", "Epson"},
		},
		{Text: "Please provide your name.", Field: "name", RequiresInput: true},
		{Text: "Please provide your email.", Field: "email", RequiresInput: true},
		{Text: "Please provide your phone number.", Field: "phone", RequiresInput: true},
		{Text: "Thank you! Here's a summary of your request:", Field: "summary"},
	}
}
