package middleware

import (
	"context"
	"maps"
	"regexp"

	"github.com/aretw0/intake/pkg/ports"
)

// Mask replaces the value of every field matching a PII pattern.
const Mask = "***"

// DefaultPIIPatterns covers the contact fields collected by the printer request script.
var DefaultPIIPatterns = []string{"(?i)email", "(?i)phone", "(?i)password", "(?i)ssn"}

type piiMiddleware struct {
	next     ports.AnswerStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks values of fields matching the patterns.
// Masking happens on write only: the caller's map is never modified, and
// masked values cannot be recovered on Load.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.AnswerStore) ports.AnswerStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, key string, answers map[string]string) error {
	masked := maps.Clone(answers)
	for field := range masked {
		for _, p := range m.patterns {
			if p.MatchString(field) {
				masked[field] = Mask
				break
			}
		}
	}
	return m.next.Save(ctx, key, masked)
}

func (m *piiMiddleware) Load(ctx context.Context, key string) (map[string]string, error) {
	return m.next.Load(ctx, key)
}

func (m *piiMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

func (m *piiMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
