/*
Package dsl provides a fluent builder for constructing conversation scripts in Go.

It is an alternative to YAML files and Loam directories when the script is
generated, used in tests, or simply better kept next to the code.

Example usage:

	s, err := dsl.New().
		Choice("issue", "Hello! How can I help you today?", "Printer Fix", "Text").
		Choice("brand", "Please select your printer brand.", "HP", "Canon", "Epson").
		Ask("name", "Please provide your name.").Label("Full name").
		Say("Thank you! Here's a summary of your request:").Field("summary").
		Build()
*/
package dsl
