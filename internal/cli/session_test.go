package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/intake/pkg/adapters/file"
	"github.com/aretw0/intake/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const printerInput = "1\ncanon\nBob\nbob@example.com\n555-0100\n"

func TestRunSession_BuiltinScript(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "intake.prom")
	out := &strings.Builder{}

	err := RunSession(context.Background(), RunOptions{
		Store:       StoreOptions{Type: SinkFile, Path: dir},
		Instant:     true,
		MetricsFile: metricsPath,
		In:          strings.NewReader(printerInput),
		Out:         out,
	})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "version")
	assert.Contains(t, output, "Agent: Hello! How can I help you today?")
	assert.Contains(t, output, "1) Printer Fix")
	assert.Contains(t, output, "You: Canon")
	assert.Contains(t, output, "Agent: Thank you! Here's a summary of your request:")
	assert.Contains(t, output, "| Email | bob@example.com |")
	assert.NotContains(t, output, ">>>", "a completed conversation needs no closing message")

	answers, err := file.New(dir).Load(context.Background(), script.PrinterRequestKey)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"issue": "Printer Fix",
		"brand": "Canon",
		"name":  "Bob",
		"email": "bob@example.com",
		"phone": "555-0100",
	}, answers)

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `intake_conversations_completed_total{result="saved"} 1`)
}

func TestRunSession_ScriptFileAndKeyOverride(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "support.yaml")
	require.NoError(t, os.WriteFile(scriptPath, []byte(`
name: support
key: supportRequest
steps:
  - text: What is wrong?
    field: problem
    requires_input: true
  - text: Thanks
`), 0644))

	for _, tt := range []struct {
		name    string
		key     string
		wantKey string
	}{
		{"Document Key", "", "supportRequest"},
		{"Flag Key", "override", "override"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			sinkDir := t.TempDir()
			err := RunSession(context.Background(), RunOptions{
				ScriptPath: scriptPath,
				Key:        tt.key,
				Store:      StoreOptions{Type: SinkFile, Path: sinkDir},
				Instant:    true,
				In:         strings.NewReader("Paper jam\n"),
				Out:        &strings.Builder{},
			})
			require.NoError(t, err)

			answers, err := file.New(sinkDir).Load(context.Background(), tt.wantKey)
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"problem": "Paper jam"}, answers)
		})
	}
}

func TestRunSession_Exit(t *testing.T) {
	dir := t.TempDir()
	out := &strings.Builder{}

	err := RunSession(context.Background(), RunOptions{
		Store:   StoreOptions{Type: SinkFile, Path: dir},
		Instant: true,
		In:      strings.NewReader("2\nexit\n"),
		Out:     out,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), ">>> Left with 1 answer(s) unsaved.")

	keys, err := file.New(dir).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRunSession_JSON(t *testing.T) {
	out := &strings.Builder{}

	err := RunSession(context.Background(), RunOptions{
		Store: StoreOptions{Type: SinkMemory},
		JSON:  true,
		In:    strings.NewReader("\"Text\"\n\"HP\"\nBob\nbob@example.com\n555\n"),
		Out:   out,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "not JSON: %s", line)
	}

	var last struct {
		Type    string `json:"type"`
		Summary []struct {
			Field string `json:"field"`
			Value string `json:"value"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	assert.Equal(t, "summary", last.Type)
	require.Len(t, last.Summary, 5)
	assert.Equal(t, "Text", last.Summary[0].Value)
	assert.Equal(t, "HP", last.Summary[1].Value)
}

func TestRunSession_InvalidScript(t *testing.T) {
	scriptPath := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(scriptPath, []byte("steps: []\n"), 0644))

	err := RunSession(context.Background(), RunOptions{
		ScriptPath: scriptPath,
		Store:      StoreOptions{Type: SinkMemory},
		In:         strings.NewReader(""),
		Out:        &strings.Builder{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid script")
}
