package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewText(&buf, slog.LevelInfo)

	logger.Info("Save Failed", "error", errors.New("boom"))

	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=")
}

func TestNewJSON_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("Operation Rejected", "error", "empty")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "Operation Rejected", entry["msg"])
	assert.Equal(t, "empty", entry["err"])
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Error("ignored", "err", "x")
	})
}
