package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/c360studio/pepgraph/export"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.Path != "peps.json" {
		t.Errorf("expected default input path peps.json, got %s", cfg.Input.Path)
	}
	if cfg.Input.URL == "" {
		t.Error("expected a default index URL")
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("expected default output dir out, got %s", cfg.Output.Dir)
	}
	if len(cfg.Export.Formats) != 3 {
		t.Errorf("expected 3 default formats, got %d", len(cfg.Export.Formats))
	}
	if cfg.Publish.Enabled {
		t.Error("expected publishing disabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "missing input entirely",
			modify: func(c *Config) {
				c.Input.Path = ""
				c.Input.URL = ""
			},
			wantErr: true,
		},
		{
			name:    "path without url is fine",
			modify:  func(c *Config) { c.Input.URL = "" },
			wantErr: false,
		},
		{
			name:    "missing output dir",
			modify:  func(c *Config) { c.Output.Dir = "" },
			wantErr: true,
		},
		{
			name:    "no formats",
			modify:  func(c *Config) { c.Export.Formats = nil },
			wantErr: true,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Export.Formats = []string{"rdfxml"} },
			wantErr: true,
		},
		{
			name:    "format aliases accepted",
			modify:  func(c *Config) { c.Export.Formats = []string{"ttl", "nt"} },
			wantErr: false,
		},
		{
			name: "publish enabled without url",
			modify: func(c *Config) {
				c.Publish.Enabled = true
				c.Publish.NATSURL = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFormats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Export.Formats = []string{"ttl", "jsonld"}

	formats, err := cfg.Formats()
	if err != nil {
		t.Fatalf("Formats() error = %v", err)
	}
	if len(formats) != 2 || formats[0] != export.FormatTurtle || formats[1] != export.FormatJSONLD {
		t.Errorf("unexpected formats: %v", formats)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pepgraph.yaml")

	cfg := DefaultConfig()
	cfg.Output.Dir = "artifacts"
	cfg.Timeline.Author = "Barry Warsaw"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Output.Dir != "artifacts" {
		t.Errorf("expected output dir artifacts, got %s", loaded.Output.Dir)
	}
	if loaded.Timeline.Author != "Barry Warsaw" {
		t.Errorf("expected timeline author Barry Warsaw, got %s", loaded.Timeline.Author)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// The loader skips its warning for absent files by unwrapping to the
	// fs sentinel, so the wrap must preserve it.
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected error to satisfy fs.ErrNotExist, got %v", err)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{}
	other.Output.Dir = "elsewhere"
	other.Publish.Enabled = true
	other.Publish.NATSURL = "nats://example:4222"

	base.Merge(other)

	if base.Output.Dir != "elsewhere" {
		t.Errorf("expected merged output dir elsewhere, got %s", base.Output.Dir)
	}
	if !base.Publish.Enabled {
		t.Error("expected publish enabled after merge")
	}
	if base.Publish.NATSURL != "nats://example:4222" {
		t.Errorf("unexpected NATS URL: %s", base.Publish.NATSURL)
	}
	// Zero values in other leave base untouched.
	if base.Input.Path != "peps.json" {
		t.Errorf("expected input path preserved, got %s", base.Input.Path)
	}
}
