package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when --config is not given.
const DefaultConfigFile = "intake.yaml"

// Flag names shared by the config file and the command line.
const (
	FlagScript      = "script"
	FlagKey         = "key"
	FlagSink        = "sink"
	FlagSinkPath    = "sink-path"
	FlagRedisURL    = "redis-url"
	FlagRedisTTL    = "redis-ttl"
	FlagBlobURL     = "blob-url"
	FlagMask        = "mask"
	FlagJSON        = "json"
	FlagInstant     = "instant"
	FlagQuantum     = "quantum"
	FlagRestart     = "restart"
	FlagMetricsFile = "metrics-file"
	FlagDebug       = "debug"
)

// FileConfig is the on-disk configuration. Every key mirrors a flag;
// flags set explicitly on the command line take precedence.
type FileConfig struct {
	Script      string        `yaml:"script"`
	Key         string        `yaml:"key"`
	Sink        string        `yaml:"sink"`
	SinkPath    string        `yaml:"sink_path"`
	RedisURL    string        `yaml:"redis_url"`
	RedisTTL    time.Duration `yaml:"redis_ttl"`
	BlobURL     string        `yaml:"blob_url"`
	Mask        bool          `yaml:"mask"`
	JSON        bool          `yaml:"json"`
	Instant     bool          `yaml:"instant"`
	Quantum     time.Duration `yaml:"quantum"`
	Restart     bool          `yaml:"restart"`
	MetricsFile string        `yaml:"metrics_file"`
	Debug       bool          `yaml:"debug"`
}

// LoadConfig reads a YAML configuration file. Unknown keys are rejected.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg FileConfig
	if len(bytes.TrimSpace(data)) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Quantum < 0 {
		return nil, fmt.Errorf("failed to parse config %s: quantum must not be negative", path)
	}
	return &cfg, nil
}

// Apply copies configured values into opts for every flag that was not set
// explicitly. changed reports whether a flag was given on the command line.
func (c *FileConfig) Apply(opts *RunOptions, changed func(flag string) bool) {
	setString := func(flag string, dst *string, v string) {
		if v != "" && !changed(flag) {
			*dst = v
		}
	}
	setBool := func(flag string, dst *bool, v bool) {
		if v && !changed(flag) {
			*dst = v
		}
	}
	setDuration := func(flag string, dst *time.Duration, v time.Duration) {
		if v != 0 && !changed(flag) {
			*dst = v
		}
	}

	setString(FlagScript, &opts.ScriptPath, c.Script)
	setString(FlagKey, &opts.Key, c.Key)
	setString(FlagSink, &opts.Store.Type, c.Sink)
	setString(FlagSinkPath, &opts.Store.Path, c.SinkPath)
	setString(FlagRedisURL, &opts.Store.RedisURL, c.RedisURL)
	setDuration(FlagRedisTTL, &opts.Store.RedisTTL, c.RedisTTL)
	setString(FlagBlobURL, &opts.Store.BlobURL, c.BlobURL)
	setBool(FlagMask, &opts.Store.Mask, c.Mask)
	setBool(FlagJSON, &opts.JSON, c.JSON)
	setBool(FlagInstant, &opts.Instant, c.Instant)
	setDuration(FlagQuantum, &opts.Quantum, c.Quantum)
	setBool(FlagRestart, &opts.Restart, c.Restart)
	setString(FlagMetricsFile, &opts.MetricsFile, c.MetricsFile)
	setBool(FlagDebug, &opts.Debug, c.Debug)
}
