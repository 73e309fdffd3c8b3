// Package config provides configuration loading and management for pepgraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/pepgraph/export"
	"github.com/c360studio/pepgraph/source/pepsjson"
)

// Config represents the complete pepgraph configuration
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Export   ExportConfig   `yaml:"export"`
	Timeline TimelineConfig `yaml:"timeline"`
	Publish  PublishConfig  `yaml:"publish"`
}

// InputConfig configures where the proposal index comes from
type InputConfig struct {
	// Path is the local index file, used as-is when present and as the
	// download cache otherwise
	Path string `yaml:"path"`
	// URL is the remote index location
	URL string `yaml:"url"`
}

// OutputConfig configures where run artifacts are written
type OutputConfig struct {
	// Dir is the output directory (created if missing)
	Dir string `yaml:"dir"`
}

// ExportConfig configures the triple serialization step
type ExportConfig struct {
	// Formats lists the serialization formats to write (turtle, ntriples, jsonld)
	Formats []string `yaml:"formats"`
}

// TimelineConfig configures the timeline projection
type TimelineConfig struct {
	// Author filters the timeline to one author's proposals
	Author string `yaml:"author"`
}

// PublishConfig configures optional NATS publication of graph entities
type PublishConfig struct {
	// Enabled turns publication on (off by default)
	Enabled bool `yaml:"enabled"`
	// NATSURL is the NATS server URL
	NATSURL string `yaml:"nats_url"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path: "peps.json",
			URL:  pepsjson.DefaultIndexURL,
		},
		Output: OutputConfig{
			Dir: "out",
		},
		Export: ExportConfig{
			Formats: []string{"turtle", "ntriples", "jsonld"},
		},
		Timeline: TimelineConfig{
			Author: "Guido van Rossum",
		},
		Publish: PublishConfig{
			Enabled: false,
			NATSURL: "nats://localhost:4222",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Input.Path == "" && c.Input.URL == "" {
		return fmt.Errorf("input.path or input.url is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if len(c.Export.Formats) == 0 {
		return fmt.Errorf("export.formats requires at least one format")
	}
	for _, name := range c.Export.Formats {
		if _, err := export.ParseFormat(name); err != nil {
			return fmt.Errorf("export.formats: %w", err)
		}
	}
	if c.Publish.Enabled && c.Publish.NATSURL == "" {
		return fmt.Errorf("publish.nats_url is required when publish.enabled is set")
	}
	return nil
}

// Formats returns the configured export formats, parsed.
func (c *Config) Formats() ([]export.Format, error) {
	formats := make([]export.Format, 0, len(c.Export.Formats))
	for _, name := range c.Export.Formats {
		f, err := export.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Input
	if other.Input.Path != "" {
		c.Input.Path = other.Input.Path
	}
	if other.Input.URL != "" {
		c.Input.URL = other.Input.URL
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}

	// Export
	if len(other.Export.Formats) > 0 {
		c.Export.Formats = other.Export.Formats
	}

	// Timeline
	if other.Timeline.Author != "" {
		c.Timeline.Author = other.Timeline.Author
	}

	// Publish
	if other.Publish.Enabled {
		c.Publish.Enabled = true
	}
	if other.Publish.NATSURL != "" {
		c.Publish.NATSURL = other.Publish.NATSURL
	}
}
