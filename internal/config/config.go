package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/p0llard/vericert/internal/badge"
	"github.com/p0llard/vericert/internal/collector"
)

// Config controls badge generation. Zero values mean "use the default".
type Config struct {
	Label    string   `yaml:"label,omitempty"`
	BadgeURL string   `yaml:"badge_url,omitempty"`
	Output   string   `yaml:"output,omitempty"`
	Style    string   `yaml:"style,omitempty"`
	Include  []string `yaml:"include,omitempty"`
	Patterns Patterns `yaml:"patterns,omitempty"`
}

// Patterns overrides the marker patterns searched for.
type Patterns struct {
	Admitted string `yaml:"admitted,omitempty"`
	Theorems string `yaml:"theorems,omitempty"`
	Qed      string `yaml:"qed,omitempty"`
}

// Load reads the configuration file at path. A missing file is silently
// ignored and yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// CollectorPatterns returns the marker patterns with defaults filled in.
func (c Config) CollectorPatterns() collector.Patterns {
	p := collector.DefaultPatterns()
	if c.Patterns.Admitted != "" {
		p.Admitted = c.Patterns.Admitted
	}
	if c.Patterns.Theorems != "" {
		p.Theorems = c.Patterns.Theorems
	}
	if c.Patterns.Qed != "" {
		p.Qed = c.Patterns.Qed
	}
	return p
}

func applyDefaults(cfg *Config) {
	if cfg.Label == "" {
		cfg.Label = badge.DefaultLabel
	}
	if cfg.BadgeURL == "" {
		cfg.BadgeURL = badge.DefaultService
	}
	if cfg.Output == "" {
		cfg.Output = badge.DefaultOutput
	}
	if cfg.Style == "" {
		cfg.Style = string(badge.StyleFlat)
	}
}

func validate(cfg Config) error {
	switch badge.Style(cfg.Style) {
	case badge.StyleFlat, badge.StyleFlatSquare:
	default:
		return fmt.Errorf("unknown style %q", cfg.Style)
	}
	for _, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	return nil
}
