package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_Kind(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want StepKind
	}{
		{"Informational", Step{Text: "Done", Field: "summary"}, StepInfo},
		{"Free Text", Step{Text: "Name?", Field: "name", RequiresInput: true}, StepText},
		{"Choice", Step{Text: "Pick", Field: "c", Options: []string{"A"}}, StepChoice},
		{"Options Win Over RequiresInput", Step{Text: "Pick", Field: "c", Options: []string{"X"}, RequiresInput: true}, StepChoice},
		{"Empty Options Is Not A Choice", Step{Text: "Name?", Field: "n", Options: []string{}, RequiresInput: true}, StepText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.step.Kind())
		})
	}
}

func TestStep_InputRequest(t *testing.T) {
	assert.Nil(t, Step{Text: "hi"}.InputRequest())

	req := Step{Field: "c", Options: []string{"X"}, RequiresInput: true}.InputRequest()
	require.NotNil(t, req)
	assert.Equal(t, InputChoice, req.Type)
	assert.Equal(t, []string{"X"}, req.Options)

	req = Step{Field: "name", RequiresInput: true}.InputRequest()
	require.NotNil(t, req)
	assert.Equal(t, InputText, req.Type)
	assert.Equal(t, "name", req.Field)
}

func TestScript_Validate(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		err := Script{}.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidScript)
	})

	t.Run("Valid", func(t *testing.T) {
		s := Script{
			{Text: "Pick one", Field: "choice", Options: []string{"A", "B"}},
			{Text: "Name?", Field: "name", RequiresInput: true},
			{Text: "Done", Field: "summary"},
		}
		assert.NoError(t, s.Validate())
	})

	t.Run("Duplicate Input Fields", func(t *testing.T) {
		s := Script{
			{Text: "Name?", Field: "name", RequiresInput: true},
			{Text: "Again?", Field: "name", RequiresInput: true},
		}
		err := s.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidScript)

		var cfg *ConfigurationError
		require.True(t, errors.As(err, &cfg))
		assert.Equal(t, 1, cfg.Index)
		assert.Equal(t, "name", cfg.Field)
	})

	t.Run("Informational Fields May Repeat", func(t *testing.T) {
		s := Script{
			{Text: "Hello", Field: "note"},
			{Text: "Name?", Field: "name", RequiresInput: true},
			{Text: "Bye", Field: "note"},
		}
		assert.NoError(t, s.Validate())
	})

	t.Run("Multiple Problems Are Aggregated", func(t *testing.T) {
		s := Script{
			{Text: "A?", RequiresInput: true},
			{Text: "B?", Field: "b", RequiresInput: true},
			{Text: "C?", Field: "b", Options: []string{"x"}},
		}
		err := s.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidScript)
		assert.Len(t, ValidationErrors(err), 2)
	})
}

func TestScript_CloneIsDeep(t *testing.T) {
	s := Script{{Text: "Pick", Field: "c", Options: []string{"A", "B"}}}
	c := s.Clone()
	c[0].Options[0] = "Z"
	assert.Equal(t, "A", s[0].Options[0])
}
