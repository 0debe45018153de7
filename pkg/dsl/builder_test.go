package dsl

import (
	"context"
	"testing"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/aretw0/intake/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Chain(t *testing.T) {
	s, err := New().
		Choice("issue", "How can I help?", "Printer Fix", "Text").
		Ask("name", "Name?").Label("Full name").
		Say("Thanks!").Field("summary").
		Build()
	require.NoError(t, err)

	assert.Equal(t, domain.Script{
		{Text: "How can I help?", Field: "issue", Options: []string{"Printer Fix", "Text"}},
		{Text: "Name?", Field: "name", RequiresInput: true, Label: "Full name"},
		{Text: "Thanks!", Field: "summary"},
	}, s)
}

func TestBuilder_Validates(t *testing.T) {
	_, err := New().Ask("name", "A?").Ask("name", "B?").Build()
	assert.ErrorIs(t, err, domain.ErrInvalidScript)

	_, err = New().Build()
	assert.ErrorIs(t, err, domain.ErrInvalidScript)
}

func TestBuilder_BuildReturnsCopies(t *testing.T) {
	b := New()
	b.Choice("c", "Pick", "A", "B")

	first, err := b.Build()
	require.NoError(t, err)
	first[0].Options[0] = "Z"

	second, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "A", second[0].Options[0])
}

func TestBuilder_Loader(t *testing.T) {
	b := New()
	b.Say("Hello")
	b.Ask("email", "Email?")

	loader, err := b.Loader()
	require.NoError(t, err)

	tests.ScriptLoaderContractTest(t, loader, domain.Script{
		{Text: "Hello"},
		{Text: "Email?", Field: "email", RequiresInput: true},
	})

	_, err = New().Loader()
	assert.Error(t, err)

	s, err := loader.LoadScript(context.Background())
	require.NoError(t, err)
	assert.Len(t, s, 2)
}
