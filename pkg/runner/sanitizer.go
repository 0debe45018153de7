package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMaxInputSize bounds a single answer, in bytes.
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize overrides DefaultMaxInputSize.
	EnvMaxInputSize = "INTAKE_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// MaxInputSize returns the answer size limit, honouring EnvMaxInputSize when
// it holds a positive integer.
func MaxInputSize() int {
	if v, err := strconv.Atoi(os.Getenv(EnvMaxInputSize)); err == nil && v > 0 {
		return v
	}
	return DefaultMaxInputSize
}

// SanitizeInput checks an answer before it reaches the engine.
// Oversized and non UTF-8 input is rejected, never truncated, so a stored
// answer is never silently cut. Control characters other than newline, tab
// and carriage return are dropped, which keeps ANSI sequences out of the
// transcript and the sink.
func SanitizeInput(input string) (string, error) {
	if limit := MaxInputSize(); len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}
	if strings.IndexFunc(input, unsafeControl) < 0 {
		return input, nil
	}
	return strings.Map(func(r rune) rune {
		if unsafeControl(r) {
			return -1
		}
		return r
	}, input), nil
}

func unsafeControl(r rune) bool {
	switch r {
	case '\n', '\t', '\r':
		return false
	}
	return unicode.IsControl(r)
}
