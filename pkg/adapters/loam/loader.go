package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/loam"
)

// Loader adapts a Loam repository to the ScriptLoader interface.
// Every document of the repository is one step; steps are ordered by
// document ID, so files are usually named with a numeric prefix
// (01-greeting.md, 02-brand.md, ...).
type Loader struct {
	Repo *loam.TypedRepository[StepMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[StepMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at path and wraps it.
func Open(path string) (*Loader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// The loader never writes, so ReadOnly also keeps Loam out of its dev sandbox.
	repo, err := loam.Init(absPath, loam.WithReadOnly(true))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[StepMetadata](repo)), nil
}

type entry struct {
	id   string
	step domain.Step
}

// LoadScript lists the repository and converts its documents into a validated script.
// List only carries cached metadata, so every document is fetched again for its body.
func (l *Loader) LoadScript(ctx context.Context) (domain.Script, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string, len(docs))
	entries := make([]entry, 0, len(docs))
	for _, listed := range docs {
		id := trimExtension(listed.ID)
		if existing, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: step '%s' is defined in both '%s' and '%s'", id, existing, listed.ID)
		}
		seen[id] = listed.ID

		doc, err := l.Repo.Get(ctx, listed.ID)
		if err != nil {
			return nil, fmt.Errorf("loam get failed for %s: %w", listed.ID, err)
		}
		entries = append(entries, entry{id: id, step: doc.Data.Step(doc.Content)})
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.id, b.id)
	})

	s := make(domain.Script, 0, len(entries))
	for _, e := range entries {
		s = append(s, e.step)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
