package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
script: steps
sink: redis
redis_url: redis://localhost:6379/2
redis_ttl: 24h
key: intake-demo
mask: true
quantum: 10ms
restart: true
metrics_file: intake.prom
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, &FileConfig{
		Script:      "steps",
		Key:         "intake-demo",
		Sink:        SinkRedis,
		RedisURL:    "redis://localhost:6379/2",
		RedisTTL:    24 * time.Hour,
		Mask:        true,
		Quantum:     10 * time.Millisecond,
		Restart:     true,
		MetricsFile: "intake.prom",
	}, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "sinks: file\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sinks")

	_, err = LoadConfig(writeConfig(t, "quantum: -5ms\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantum")
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "\n"))
	require.NoError(t, err)
	assert.Equal(t, &FileConfig{}, cfg)
}

func TestFileConfig_Apply_FlagsWin(t *testing.T) {
	cfg := &FileConfig{
		Script:  "config.yaml",
		Sink:    SinkBlob,
		BlobURL: "mem://",
		Key:     "from-config",
		Instant: true,
		Quantum: time.Second,
	}

	opts := RunOptions{
		Key:   "from-flag",
		Store: StoreOptions{Type: SinkFile},
	}
	changed := map[string]bool{FlagKey: true}
	cfg.Apply(&opts, func(flag string) bool { return changed[flag] })

	assert.Equal(t, "config.yaml", opts.ScriptPath)
	assert.Equal(t, "from-flag", opts.Key)
	assert.Equal(t, SinkBlob, opts.Store.Type, "default flag values are overridden")
	assert.Equal(t, "mem://", opts.Store.BlobURL)
	assert.True(t, opts.Instant)
	assert.Equal(t, time.Second, opts.Quantum)
	assert.False(t, opts.Restart)
}
