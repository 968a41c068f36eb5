package infra

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings. Sensitive-free: everything here
// may be overridden through environment variables after loading.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`

	Archive struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"archive"`
}

// DefaultConfig returns the settings used when no config file exists, so
// the scenario runner works out of the box.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "ledger-go"
	cfg.App.Version = "dev"
	cfg.Logging.Level = "info"
	cfg.Archive.Enabled = false
	cfg.Archive.Path = "data/ledger_events.db"
	return cfg
}

// LoadConfig reads and parses the config file. A missing file is not an
// error; defaults apply.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		overrideWithEnv(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.Logging.Level)
	}
	if c.Archive.Enabled && c.Archive.Path == "" {
		return fmt.Errorf("archive enabled but no path configured")
	}
	return nil
}

func overrideWithEnv(cfg *Config) {
	if level := os.Getenv("LEDGER_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if path := os.Getenv("LEDGER_ARCHIVE_PATH"); path != "" {
		cfg.Archive.Enabled = true
		cfg.Archive.Path = path
	}
}
