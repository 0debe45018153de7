package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/aretw0/intake/pkg/domain"
)

// Store implements ports.AnswerStore in memory.
// Safe for concurrent use.
type Store struct {
	data  map[string]map[string]string
	saves int
	fail  error
	mu    sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]map[string]string),
	}
}

// FailWith makes every subsequent Save return err. Pass nil to recover.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

// Save persists a copy of the answers in memory.
func (s *Store) Save(ctx context.Context, key string, answers map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.fail != nil {
		return s.fail
	}
	s.data[key] = copyAnswers(answers)
	return nil
}

// Load retrieves a copy of the answers so callers can't mutate the store.
func (s *Store) Load(ctx context.Context, key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answers, ok := s.data[key]
	if !ok {
		return nil, domain.ErrAnswersNotFound
	}
	return copyAnswers(answers), nil
}

// Delete removes the answers.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns keys with stored answers.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}

// Saves returns how many times Save was called, including failed calls.
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func copyAnswers(in map[string]string) map[string]string {
	out := maps.Clone(in)
	if out == nil {
		out = make(map[string]string)
	}
	return out
}
