package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ConfigVersion is written into new config files.
const ConfigVersion = "1"

// DefaultIROutput is where compiled intermediate code goes unless overridden.
const DefaultIROutput = "intermediate_code.txt"

// DefaultMaxSteps bounds interpreted programs.
const DefaultMaxSteps = 1_000_000

// Config represents the flat minic project configuration
type Config struct {
	Version       string `json:"version"`
	IROutput      string `json:"ir_output"`      // path for `compile` output
	RecordHistory bool   `json:"record_history"` // store runs in ~/.minic/minic.db
	MaxSteps      int    `json:"max_steps"`      // interpreter step limit
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Version:       ConfigVersion,
		IROutput:      DefaultIROutput,
		RecordHistory: true,
		MaxSteps:      DefaultMaxSteps,
	}
}

// LoadConfig reads .minic/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".minic", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Start from defaults so omitted keys keep sensible values.
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config from dir, falling back to DefaultConfig
// when no config file exists. Malformed configs are still an error.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	minicDir := filepath.Join(dir, ".minic")
	if err := os.MkdirAll(minicDir, 0755); err != nil {
		return fmt.Errorf("failed to create .minic dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(minicDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.IROutput == "" {
		return errors.New("ir_output cannot be empty")
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be non-negative (got %d)", c.MaxSteps)
	}
	return nil
}
