package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/ports"
)

// ListAnswers prints every key with stored answers.
func ListAnswers(ctx context.Context, store ports.AnswerStore, w io.Writer) error {
	keys, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing answers: %w", err)
	}

	if len(keys) == 0 {
		fmt.Fprintln(w, "No stored answers found.")
		return nil
	}

	slices.Sort(keys)
	fmt.Fprintln(w, "Stored Answers:")
	for _, k := range keys {
		fmt.Fprintln(w, "- "+k)
	}
	return nil
}

// ShowAnswers prints the answers stored under key, as indented JSON or as
// "field: value" lines sorted by field.
func ShowAnswers(ctx context.Context, store ports.AnswerStore, key string, w io.Writer, asJSON bool) error {
	answers, err := store.Load(ctx, key)
	if errors.Is(err, domain.ErrAnswersNotFound) {
		return fmt.Errorf("no answers stored under %q", key)
	}
	if err != nil {
		return fmt.Errorf("error loading answers: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(answers)
	}

	fields := make([]string, 0, len(answers))
	for f := range answers {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "%s: %s\n", f, answers[f])
	}
	return nil
}

// DeleteAnswers removes the answers stored under key.
func DeleteAnswers(ctx context.Context, store ports.AnswerStore, key string, w io.Writer) error {
	if err := store.Delete(ctx, key); err != nil {
		return fmt.Errorf("error deleting answers: %w", err)
	}
	fmt.Fprintf(w, "Answers %q removed.\n", key)
	return nil
}
