package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/dieta/internal/store/jsonstore"
)

// Config is the user configuration, read from ~/.dieta/config.yaml.
type Config struct {
	DraftFile string        `yaml:"draft_file"`
	Theme     string        `yaml:"theme"` // classic, neon, mono
	Logging   LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty = no logs
}

// Dir is where dieta keeps its files.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".dieta"), nil
}

// DefaultPath is the config file location used when --config is not given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	draftFile := jsonstore.DefaultFileName
	if dir, err := Dir(); err == nil {
		draftFile = filepath.Join(dir, jsonstore.DefaultFileName)
	}
	return &Config{
		DraftFile: draftFile,
		Theme:     "classic",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, cfg.Validate()
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DIETA_DRAFT_FILE"); v != "" {
		c.DraftFile = v
	}
	if v := os.Getenv("DIETA_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("DIETA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.DraftFile == "" {
		return fmt.Errorf("draft_file must be set")
	}
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q (want classic, neon or mono)", c.Theme)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
