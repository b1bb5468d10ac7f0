// Package config reads and writes paragon.yaml.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file paragon looks for in the working directory.
const FileName = "paragon.yaml"

// Input encodings.
const (
	EncodingAuto        = "auto"
	EncodingUTF8        = "utf-8"
	EncodingWindows1250 = "windows-1250"
)

// Output formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// Config represents the top-level paragon.yaml configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Inbox  InboxConfig  `yaml:"inbox"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig controls how statement bytes are decoded.
type InputConfig struct {
	Encoding string `yaml:"encoding"`
}

// OutputConfig controls how parsed statements are written.
type OutputConfig struct {
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"` // relative to the project root
}

// InboxConfig controls the import command.
type InboxConfig struct {
	Dir     string `yaml:"dir"` // relative to the project root
	Workers int    `yaml:"workers"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level"` // zerolog level name
}

var (
	encodings = map[string]bool{EncodingAuto: true, EncodingUTF8: true, EncodingWindows1250: true}
	formats   = map[string]bool{FormatTable: true, FormatCSV: true, FormatJSON: true}
	levels    = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true}
)

// Load reads a paragon.yaml file from disk. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Encoding: EncodingAuto,
		},
		Output: OutputConfig{
			Format: FormatTable,
			Dir:    "out",
		},
		Inbox: InboxConfig{
			Dir:     "inbox",
			Workers: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if !encodings[c.Input.Encoding] {
		errs = append(errs, fmt.Errorf("input.encoding: unsupported encoding %q", c.Input.Encoding))
	}
	if !formats[c.Output.Format] {
		errs = append(errs, fmt.Errorf("output.format: unsupported format %q", c.Output.Format))
	}
	if c.Output.Dir == "" {
		errs = append(errs, errors.New("output.dir: must not be empty"))
	}
	if c.Inbox.Dir == "" {
		errs = append(errs, errors.New("inbox.dir: must not be empty"))
	}
	if c.Inbox.Workers < 1 {
		errs = append(errs, fmt.Errorf("inbox.workers: must be at least 1, got %d", c.Inbox.Workers))
	}
	if !levels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}
