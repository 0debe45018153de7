package tests

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunAnswerStoreContract runs a suite of tests to verify that an AnswerStore
// implementation adheres to the defined interface contract.
func RunAnswerStoreContract(t *testing.T, store ports.AnswerStore) {
	t.Helper()
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		answers := map[string]string{"choice": "A", "name": "Bob"}

		err := store.Save(ctx, key, answers)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, answers, loaded)
	})

	t.Run("Save Is Isolated From Caller", func(t *testing.T) {
		answers := map[string]string{"name": "Bob"}
		require.NoError(t, store.Save(ctx, key, answers))

		answers["name"] = "Mallory"

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "Bob", loaded["name"])
	})

	t.Run("Last Write Wins", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, map[string]string{"name": "Bob"}))
		require.NoError(t, store.Save(ctx, key, map[string]string{"email": "ann@example.com"}))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"email": "ann@example.com"}, loaded)
	})

	t.Run("Empty Answers", func(t *testing.T) {
		emptyKey := key + "-empty"
		require.NoError(t, store.Save(ctx, emptyKey, map[string]string{}))
		defer func() { _ = store.Delete(ctx, emptyKey) }()

		loaded, err := store.Load(ctx, emptyKey)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrAnswersNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, map[string]string{"name": "Bob"}))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrAnswersNotFound, "Load after Delete should return ErrAnswersNotFound")

		assert.NoError(t, store.Delete(ctx, key), "Deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		require.NoError(t, store.Save(ctx, id1, map[string]string{"a": "1"}))
		require.NoError(t, store.Save(ctx, id2, map[string]string{"b": "2"}))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}
