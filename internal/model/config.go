package model

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Project ProjectConfig `yaml:"project"`
	Query   QueryConfig   `yaml:"query"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	URL      string `yaml:"url"`
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
}

type ProjectConfig struct {
	BaseDir string `yaml:"base_dir"`
	WorkDir string `yaml:"work_dir"`
	Branch  string `yaml:"branch"`
}

type QueryConfig struct {
	// MaxRetry is the number of task status fetches before giving up.
	MaxRetry int `yaml:"max_retry"`
	// WaitMs is the pause between two status fetches.
	WaitMs int `yaml:"wait_ms"`
}

type ReportConfig struct {
	// WaitTimeoutSec bounds how long to wait for the scanner's report
	// descriptor to appear. 0 waits forever.
	WaitTimeoutSec int `yaml:"wait_timeout_sec"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Wait returns the inter-poll pause as a duration.
func (q QueryConfig) Wait() time.Duration {
	return time.Duration(q.WaitMs) * time.Millisecond
}

// WaitTimeout returns the report wait timeout as a duration.
func (r ReportConfig) WaitTimeout() time.Duration {
	return time.Duration(r.WaitTimeoutSec) * time.Second
}

// DefaultConfig returns a Config with every knob at its default.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in defaults for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Project.BaseDir == "" {
		c.Project.BaseDir = "."
	}
	if c.Project.WorkDir == "" {
		c.Project.WorkDir = ".scannerwork"
	}
	if c.Query.MaxRetry == 0 {
		c.Query.MaxRetry = 50
	}
	if c.Query.WaitMs == 0 {
		c.Query.WaitMs = 1000
	}
	if c.Report.WaitTimeoutSec == 0 {
		c.Report.WaitTimeoutSec = 120
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the config for values the client cannot run with.
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("server.url is required")
	}
	if c.Query.MaxRetry < 1 {
		return fmt.Errorf("query.max_retry must be >= 1, got %d", c.Query.MaxRetry)
	}
	if c.Query.WaitMs < 1 {
		return fmt.Errorf("query.wait_ms must be >= 1, got %d", c.Query.WaitMs)
	}
	return nil
}

// LoadConfig reads a yaml config file, applies defaults and validates.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
