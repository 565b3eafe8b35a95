// Package config defines the panel width configuration and loads it
// from YAML files. Defaults are resolved exactly once, at the boundary;
// downstream code always sees fully populated values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default width bounds, in host units.
const (
	DefaultWidth    = 250
	DefaultMinWidth = 150
	DefaultMaxWidth = 350
)

// Panel is the width configuration for one resizable panel. Zero
// numeric fields mean "unset" in the YAML file and are replaced by the
// defaults in Resolved.
type Panel struct {
	ID       string `yaml:"id,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	MinWidth int    `yaml:"minimum_width,omitempty"`
	MaxWidth int    `yaml:"maximum_width,omitempty"`
}

// Default returns the fully resolved default panel configuration.
func Default() Panel {
	return Panel{
		Width:    DefaultWidth,
		MinWidth: DefaultMinWidth,
		MaxWidth: DefaultMaxWidth,
	}
}

// Resolved returns a copy with every unset field replaced by its
// default. The input is not modified.
func (p Panel) Resolved() Panel {
	if p.Width == 0 {
		p.Width = DefaultWidth
	}
	if p.MinWidth == 0 {
		p.MinWidth = DefaultMinWidth
	}
	if p.MaxWidth == 0 {
		p.MaxWidth = DefaultMaxWidth
	}
	return p
}

// Validate checks the resolved configuration against the contract the
// resize core relies on. It must be called after Resolved; an unset
// field fails validation.
func (p Panel) Validate() error {
	if p.MinWidth <= 0 || p.MaxWidth <= 0 {
		return fmt.Errorf("width bounds must be positive, got min=%d max=%d", p.MinWidth, p.MaxWidth)
	}
	if p.MinWidth > p.MaxWidth {
		return fmt.Errorf("minimum width %d exceeds maximum width %d", p.MinWidth, p.MaxWidth)
	}
	return nil
}

// Load reads a panel configuration from a YAML file, resolves defaults
// and validates it. A missing file is an error; callers that want the
// defaults without a file should use Default directly.
func Load(path string) (Panel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Panel{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes, resolves and validates YAML config bytes.
func Parse(data []byte) (Panel, error) {
	var p Panel
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Panel{}, fmt.Errorf("failed to parse config: %w", err)
	}
	p = p.Resolved()
	if err := p.Validate(); err != nil {
		return Panel{}, fmt.Errorf("invalid config: %w", err)
	}
	return p, nil
}
