package cli

import (
	"io"
	"time"
)

// Sink types accepted by --sink.
const (
	SinkMemory = "memory"
	SinkFile   = "file"
	SinkRedis  = "redis"
	SinkBlob   = "blob"
)

// StoreOptions selects and configures the answer store.
type StoreOptions struct {
	Type     string
	Path     string // file sink directory
	RedisURL string
	RedisTTL time.Duration
	BlobURL  string
	Mask     bool // mask PII-looking fields before saving
}

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	// ScriptPath is a YAML/JSON script file or a directory of markdown steps.
	// Empty means discover one in the working directory, falling back to the built-in script.
	ScriptPath string
	Key        string
	Store      StoreOptions

	JSON    bool
	Instant bool
	Quantum time.Duration
	Restart bool
	NoColor bool

	MetricsFile string
	Debug       bool

	// In and Out default to Stdin and Stdout.
	In  io.Reader
	Out io.Writer
}

// DefaultQuantum is the typing speed of the terminal reveal.
const DefaultQuantum = 30 * time.Millisecond
