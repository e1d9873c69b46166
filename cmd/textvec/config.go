package main

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Input formats.
const (
	InputLines = "lines"
	InputJSON  = "json"
)

// Config holds the settings of a vectorization run.
// Values come from DefaultConfig, then the optional YAML file, then flags.
type Config struct {
	// Workers is the number of goroutines used for per-row computation.
	// 1 keeps everything on the main goroutine.
	Workers int `yaml:"workers"`

	// Format is the output encoding: json, yaml or table.
	Format string `yaml:"format"`

	// InputFormat is lines (one document per line) or json (array of strings).
	InputFormat string `yaml:"input_format"`

	// SkipBlank drops empty documents before tokenization.
	SkipBlank bool `yaml:"skip_blank"`
}

// DefaultConfig returns the settings used when neither a file nor flags override them.
func DefaultConfig() *Config {
	return &Config{
		Workers:     1,
		Format:      FormatJSON,
		InputFormat: InputLines,
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if !slices.Contains([]string{FormatJSON, FormatYAML, FormatTable}, c.Format) {
		return fmt.Errorf("config: invalid format %q: must be one of json, yaml, table", c.Format)
	}
	if !slices.Contains([]string{InputLines, InputJSON}, c.InputFormat) {
		return fmt.Errorf("config: invalid input format %q: must be one of lines, json", c.InputFormat)
	}
	return nil
}
