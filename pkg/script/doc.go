// Package script loads conversation scripts from YAML or JSON files and
// provides the built-in printer request script.
//
// A script file is either a list of steps or a document:
//
//	name: printer
//	key: printerRequest
//	steps:
//	  - text: "Please select your printer brand."
//	    field: brand
//	    options: [HP, Canon, Epson]
//	  - text: "Please provide your name."
//	    field: name
//	    requires_input: true
//	  - text: "Thank you!"
package script
