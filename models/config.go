package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "skillshell.yaml"
	DefaultPagesDir   = "pages"
	DefaultOutputDir  = "skillshell-out"
	DefaultDatabase   = "skillshell.db"
	DefaultListen     = "127.0.0.1:8080"
)

// Config holds runtime configuration read from skillshell.yaml.
// CLI flags override the paths; Metadata overrides the site record.
type Config struct {
	Metadata  PageMetadata `yaml:"metadata"`
	PagesDir  string       `yaml:"pages_dir"`
	OutputDir string       `yaml:"output_dir"`
	Database  string       `yaml:"database"`
	Listen    string       `yaml:"listen"`

	// effective is computed once on load.
	effective PageMetadata
}

// DefaultConfig returns a Config with no overrides.
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadConfig reads path as YAML. When required is false a missing file yields
// the defaults instead of an error.
func LoadConfig(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.PagesDir == "" {
		c.PagesDir = DefaultPagesDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	c.effective = DefaultMetadata().Merge(c.Metadata)
}

// SiteMetadata returns the default record with the configured overrides applied.
func (c *Config) SiteMetadata() PageMetadata {
	return c.effective.Clone()
}
