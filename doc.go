/*
Package intake runs scripted, linear conversations that collect answers from a user.

A conversation walks a fixed Script of steps. Each step is revealed one
character at a time, then either waits for input (a free-text answer or a
choice among options) or moves on by itself. Answers are keyed by the step's
field, and once the script is exhausted they are handed to an AnswerSink
exactly once.

# Concept

The engine is a small state machine with an explicit phase
(idle, revealing, awaiting_choice, awaiting_text, advancing, done). Every
operation is checked against its transition table, so calls in the wrong
phase are rejected instead of corrupting the conversation. The host owns the
I/O: it calls Advance, SubmitAnswer and SelectOption, and renders Snapshot.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/intake"
		"github.com/aretw0/intake/pkg/adapters/memory"
		"github.com/aretw0/intake/pkg/dsl"
	)

	func main() {
		s, err := dsl.New().
			Choice("issue", "What can I help you with?", "Printer Fix", "Text").
			Ask("name", "What is your name?").
			Say("Thanks!").
			Build()
		if err != nil {
			log.Fatal(err)
		}

		eng, err := intake.New(s, intake.WithSink(memory.NewStore()))
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		_ = eng.Advance(ctx)
		_ = eng.SelectOption(ctx, "Text")
		_ = eng.SubmitAnswer(ctx, "Ann")

		fmt.Println(eng.Snapshot().Answers)
	}

For terminals, pkg/runner drives the engine with a typing effect and reads
answers from stdin.
*/
package intake
