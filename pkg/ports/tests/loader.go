package tests

import (
	"context"
	"testing"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ScriptLoaderContractTest verifies that a loader returns the expected script
// and that the result is a valid, independent copy.
func ScriptLoaderContractTest(t *testing.T, loader ports.ScriptLoader, want domain.Script) {
	t.Helper()

	t.Run("LoadScript", func(t *testing.T) {
		got, err := loader.LoadScript(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, got.Validate())
	})

	t.Run("LoadScript_Independent", func(t *testing.T) {
		first, err := loader.LoadScript(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, first)
		first[0].Text = "mutated"

		second, err := loader.LoadScript(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want[0].Text, second[0].Text)
	})
}
