package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/intake/pkg/adapters/memory"
	"github.com/aretw0/intake/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	tests.RunAnswerStoreContract(t, store)
}

func TestMemoryStore_FailWith(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("disk full")

	store.FailWith(boom)
	assert.ErrorIs(t, store.Save(ctx, "k", map[string]string{"a": "1"}), boom)

	store.FailWith(nil)
	assert.NoError(t, store.Save(ctx, "k", map[string]string{"a": "1"}))
	assert.Equal(t, 2, store.Saves())
}
