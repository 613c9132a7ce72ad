// Package config holds the settings of the roadsign command,
// read from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/benoitkugler/roadsign/scene"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Template is the path of the sign markup. Empty means the embedded template.
	Template  string `yaml:"template,omitempty"`
	Limit     uint32 `yaml:"limit"`
	Temporary bool   `yaml:"temporary"`

	// Output size, in pixels for PNG and points for PDF.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	PNG string `yaml:"png,omitempty"`
	PDF string `yaml:"pdf,omitempty"`

	WarnUnknownTags bool `yaml:"warn_unknown_tags"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	initial := scene.DefaultState()
	return Config{
		Limit:     initial.Limit,
		Temporary: initial.IsTemp,
		Width:     300,
		Height:    300,
		PNG:       "roadsign.png",
	}
}

// Load reads the file at `path` over the defaults.
// An empty path or a missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.State().Validate(); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", c.Width, c.Height)
	}
	return nil
}

// State returns the initial sign state.
func (c Config) State() scene.SignState {
	return scene.SignState{Limit: c.Limit, IsTemp: c.Temporary}
}
