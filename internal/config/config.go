// Package config loads service settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"triage-insights-go/internal/explain"
)

// DefaultPath is used when TRIAGE_CONFIG is unset.
const DefaultPath = "triage.yaml"

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Explain ExplainConfig `yaml:"explain"`
}

type ServerConfig struct {
	Addr               string `yaml:"addr"`
	ReadTimeoutSec     int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec    int    `yaml:"write_timeout_sec"`
	IdleTimeoutSec     int    `yaml:"idle_timeout_sec"`
	ShutdownTimeoutSec int    `yaml:"shutdown_timeout_sec"`
}

func (s ServerConfig) ReadTimeout() time.Duration  { return seconds(s.ReadTimeoutSec) }
func (s ServerConfig) WriteTimeout() time.Duration { return seconds(s.WriteTimeoutSec) }
func (s ServerConfig) IdleTimeout() time.Duration  { return seconds(s.IdleTimeoutSec) }
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return seconds(s.ShutdownTimeoutSec)
}

// DatasetConfig says where the analytics dataset comes from. Path wins over
// SourceURL; with neither set the demo dataset is served.
type DatasetConfig struct {
	Path       string `yaml:"path"`
	SourceURL  string `yaml:"source_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

func (d DatasetConfig) Timeout() time.Duration { return seconds(d.TimeoutSec) }

type ExplainConfig struct {
	DefaultDuration string `yaml:"default_duration"`
	DefaultSeverity int    `yaml:"default_severity"`
}

// Defaults converts the section into the values explain.Defaults.Apply uses.
func (e ExplainConfig) Defaults() explain.Defaults {
	return explain.Defaults{Duration: e.DefaultDuration, Severity: e.DefaultSeverity}
}

func DefaultConfig() *Config {
	d := explain.DefaultDefaults()
	return &Config{
		Server: ServerConfig{
			Addr:               ":8080",
			ReadTimeoutSec:     15,
			WriteTimeoutSec:    60,
			IdleTimeoutSec:     120,
			ShutdownTimeoutSec: 10,
		},
		Dataset: DatasetConfig{TimeoutSec: 12},
		Explain: ExplainConfig{
			DefaultDuration: d.Duration,
			DefaultSeverity: d.Severity,
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies env
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFromEnv is Load on TRIAGE_CONFIG, or DefaultPath.
func LoadFromEnv() (*Config, error) {
	return Load(envOr("TRIAGE_CONFIG", DefaultPath))
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	c.Dataset.Path = envOr("DATASET_PATH", c.Dataset.Path)
	c.Dataset.SourceURL = envOr("ANALYTICS_SOURCE_URL", c.Dataset.SourceURL)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
