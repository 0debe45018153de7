package runner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/intake/pkg/domain"
)

// ErrInputRejected marks input the runner refuses before it reaches the engine.
// The wrapped message is shown to the user and the runner asks again.
var ErrInputRejected = errors.New("input rejected")

// InputInterceptor is a middleware that can rewrite or refuse a line of user
// input before it is submitted. snap is the snapshot the input answers.
// Returning an error wrapping ErrInputRejected asks the user again; any other
// error stops the runner.
type InputInterceptor func(ctx context.Context, snap domain.Snapshot, input string) (string, error)

// MultiInterceptor chains multiple interceptors. Each one receives the output of the previous.
func MultiInterceptor(interceptors ...InputInterceptor) InputInterceptor {
	return func(ctx context.Context, snap domain.Snapshot, input string) (string, error) {
		var err error
		for _, interceptor := range interceptors {
			input, err = interceptor(ctx, snap, input)
			if err != nil {
				return "", err
			}
		}
		return input, nil
	}
}

// OptionResolver maps the answer to a choice prompt onto one of its options.
// It accepts the exact option, the option ignoring case, or its 1-based number.
// Anything else is rejected. Text prompts pass through untouched.
func OptionResolver() InputInterceptor {
	return func(ctx context.Context, snap domain.Snapshot, input string) (string, error) {
		if snap.Prompt == nil || snap.Prompt.Type != domain.InputChoice {
			return input, nil
		}
		options := snap.Prompt.Options

		for _, opt := range options {
			if opt == input {
				return opt, nil
			}
		}
		for _, opt := range options {
			if strings.EqualFold(opt, input) {
				return opt, nil
			}
		}
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}

		return "", fmt.Errorf("%w: please choose one of %s", ErrInputRejected, listOptions(options))
	}
}

// MaxLength rejects answers longer than limit runes.
func MaxLength(limit int) InputInterceptor {
	return func(ctx context.Context, snap domain.Snapshot, input string) (string, error) {
		if n := len([]rune(input)); n > limit {
			return "", fmt.Errorf("%w: answer is %d characters long, the limit is %d", ErrInputRejected, n, limit)
		}
		return input, nil
	}
}

func listOptions(options []string) string {
	quoted := make([]string, len(options))
	for i, opt := range options {
		quoted[i] = fmt.Sprintf("%d) %s", i+1, opt)
	}
	return strings.Join(quoted, ", ")
}
