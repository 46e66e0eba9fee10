// Package config loads wordscatter settings from an optional TOML
// file. Built-in defaults apply for anything the file leaves out, and
// command-line flags override both.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordscatter/pkg/errors"
	"github.com/matzehuels/wordscatter/pkg/scatter"
)

// Config mirrors the settings a config file may provide.
//
// Example wordscatter.toml:
//
//	[canvas]
//	width = 1056
//	height = 816
//
//	[layout]
//	font_size = 24
//	max_attempts = 5000
//	max_retries = 10
//
//	[render]
//	background = "#ffffff"
//	font_family = "sans-serif"
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
}

type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type LayoutConfig struct {
	FontSize    float64 `toml:"font_size"`
	MaxAttempts int     `toml:"max_attempts"`
	MaxRetries  int     `toml:"max_retries"`
}

type RenderConfig struct {
	Background string `toml:"background"`
	FontFamily string `toml:"font_family"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  scatter.DefaultWidth,
			Height: scatter.DefaultHeight,
		},
		Layout: LayoutConfig{
			FontSize:    scatter.DefaultFontSize,
			MaxAttempts: scatter.DefaultMaxAttempts,
			MaxRetries:  scatter.DefaultMaxRetries,
		},
		Render: RenderConfig{
			Background: "#ffffff",
			FontFamily: "sans-serif",
		},
	}
}

// Load reads the config file at path, merged over the defaults.
// An empty path loads the defaults only. A missing file at a
// user-supplied path is an error; silently falling back would hide
// typos in --config.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, errors.New(errors.ErrCodeFileNotFound, "config file %s does not exist", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Discover looks for wordscatter.toml in the current directory and
// loads it when present. Absence is not an error.
func Discover() (Config, error) {
	path := filepath.Join(".", "wordscatter.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Scatter converts the file settings to the layout engine's config.
func (c Config) Scatter() scatter.Config {
	return scatter.Config{
		Width:       c.Canvas.Width,
		Height:      c.Canvas.Height,
		FontSize:    c.Layout.FontSize,
		MaxAttempts: c.Layout.MaxAttempts,
		MaxRetries:  c.Layout.MaxRetries,
	}
}

func (c Config) validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas dimensions must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Layout.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "font size must be positive, got %g", c.Layout.FontSize)
	}
	if c.Layout.MaxAttempts < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_attempts must be at least 1, got %d", c.Layout.MaxAttempts)
	}
	if c.Layout.MaxRetries < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_retries must be at least 1, got %d", c.Layout.MaxRetries)
	}
	return nil
}
