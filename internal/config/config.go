// Package config provides configuration management for the pipeline commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"companynews/internal/logger"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where commands look for a configuration file when -config is not given.
const DefaultPath = "configs/pipeline.yaml"

// Configuration validation errors.
var (
	ErrMissingInputDir   = errors.New("generator.input_dir is required")
	ErrMissingOutputDir  = errors.New("generator.output_dir is required")
	ErrSameInputOutput   = errors.New("generator.input_dir and generator.output_dir must differ")
	ErrMissingIndexFile  = errors.New("generator.index_file is required")
	ErrIndexFileHasPath  = errors.New("generator.index_file must be a bare file name")
	ErrMissingCleanInput = errors.New("cleaner.input is required")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Cleaner   CleanerConfig   `yaml:"cleaner"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GeneratorConfig contains record generator settings.
type GeneratorConfig struct {
	InputDir    string `yaml:"input_dir"`
	OutputDir   string `yaml:"output_dir"`
	IndexFile   string `yaml:"index_file"`
	ShowSummary bool   `yaml:"show_summary"`
}

// CleanerConfig contains conflict cleaner settings.
type CleanerConfig struct {
	Input string `yaml:"input"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Defaults returns a Config populated with the built-in folder layout.
func Defaults() Config {
	return Config{
		Generator: GeneratorConfig{
			InputDir:    "scrapped_output",
			OutputDir:   "api",
			IndexFile:   "available-dates.json",
			ShowSummary: true,
		},
		Cleaner: CleanerConfig{
			Input: "scrapped_output/23.08.2025.csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of Defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Resolve loads the file at path, or DefaultPath when path is empty and that
// file exists. With neither available it returns Defaults. The returned string
// is the file actually loaded, empty for defaults.
func Resolve(path string) (*Config, string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			cfg := Defaults()
			return &cfg, "", nil
		}

		path = DefaultPath
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Generator.InputDir == "" {
		return ErrMissingInputDir
	}

	if c.Generator.OutputDir == "" {
		return ErrMissingOutputDir
	}

	if filepath.Clean(c.Generator.InputDir) == filepath.Clean(c.Generator.OutputDir) {
		return ErrSameInputOutput
	}

	if c.Generator.IndexFile == "" {
		return ErrMissingIndexFile
	}

	if filepath.Base(c.Generator.IndexFile) != c.Generator.IndexFile {
		return fmt.Errorf("%w: %q", ErrIndexFileHasPath, c.Generator.IndexFile)
	}

	if c.Cleaner.Input == "" {
		return ErrMissingCleanInput
	}

	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, Index: %s, LogLevel: %s}",
		c.Generator.InputDir,
		c.Generator.OutputDir,
		c.Generator.IndexFile,
		c.Logging.Level,
	)
}
