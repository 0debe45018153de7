package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/intake"
	"github.com/aretw0/intake/internal/compiler"
	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/script"
)

// Validate loads the script at path (or the built-in one when path resolves to
// nothing) and prints an outline of its steps. With printYAML, the normalized
// script is printed instead.
func Validate(ctx context.Context, path string, w io.Writer, printYAML bool) error {
	var (
		engine *intake.Engine
		err    error
	)
	path = ResolveScriptPath(path, ".")
	if path == "" {
		engine, err = intake.New(script.PrinterRequest(), intake.WithName(BuiltinScriptName))
	} else {
		engine, err = intake.Open(ctx, path)
	}
	if err != nil {
		return err
	}

	s := engine.Script()
	if printYAML {
		data, err := compiler.Marshal(engine.Name, engine.SinkKey(), s)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	fmt.Fprintf(w, "Script %q (sink key %q): %d steps, %d inputs\n", engine.Name, engine.SinkKey(), len(s), len(s.InputSteps()))
	for i, step := range s {
		fmt.Fprintf(w, "  %2d. %-6s %s\n", i+1, step.Kind(), describeStep(step))
	}
	return nil
}

func describeStep(step domain.Step) string {
	text := strings.Join(strings.Fields(step.Text), " ")
	if r := []rune(text); len(r) > 48 {
		text = string(r[:45]) + "..."
	}
	if step.Field == "" {
		return fmt.Sprintf("%q", text)
	}
	if len(step.Options) > 0 {
		return fmt.Sprintf("%s <- %q [%s]", step.Field, text, strings.Join(step.Options, ", "))
	}
	return fmt.Sprintf("%s <- %q", step.Field, text)
}
