// Package config holds the viewer's startup configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then environment
// variables prefixed with OXY_VIEWER_. The result is validated before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name read by Load.
const EnvPrefix = "OXY_VIEWER_"

// MaxBindings is the number of animations reachable from the digit keys 1-9.
const MaxBindings = 9

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config describes the model, its animation set and the presentation settings.
type Config struct {
	// Model is the model asset name, resolved to AssetDir/Model+Extension.
	Model string `yaml:"model" env:"MODEL"`

	// Animations are the animation asset names. Position i is bound to digit key i+1.
	Animations []string `yaml:"animations" env:"ANIMATIONS" envSeparator:","`

	// DefaultAnimation, when set, is cross-faded to as soon as it loads.
	// Empty keeps the first animation to finish loading as the default.
	DefaultAnimation string `yaml:"default_animation" env:"DEFAULT_ANIMATION"`

	AssetDir  string `yaml:"asset_dir" env:"ASSET_DIR"`
	Extension string `yaml:"extension" env:"EXTENSION"`

	// FadeSeconds is the cross-fade duration used for key-driven transitions.
	FadeSeconds float32 `yaml:"fade_seconds" env:"FADE_SECONDS"`

	// Background is the clear color as "#rrggbb" or "#rrggbbaa".
	Background string `yaml:"background" env:"BACKGROUND"`

	// Workers bounds the number of concurrent asset loads.
	Workers int `yaml:"workers" env:"WORKERS"`

	Window WindowConfig `yaml:"window" envPrefix:"WINDOW_"`

	// OTLPEndpoint enables trace export when non-empty.
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTLP_ENDPOINT"`

	// Profile enables the periodic FPS log.
	Profile bool `yaml:"profile" env:"PROFILE"`
}

// WindowConfig holds the window settings.
type WindowConfig struct {
	Title  string `yaml:"title" env:"TITLE"`
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Model: "Paladin J Nordstrom",
		Animations: []string{
			"Texting While Standing",
			"Swimming",
			"Chapa-Giratoria",
			"Kneeling Pointing",
			"Taunt",
			"Silly Dancing",
		},
		AssetDir:    filepath.Join("models", "gltf"),
		Extension:   ".glb",
		FadeSeconds: 0.25,
		Background:  "#a0a0a0",
		Workers:     4,
		Window: WindowConfig{
			Title:  "oxy-viewer",
			Width:  1280,
			Height: 720,
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped when path is empty)
// and the environment, then validates it.
//
// Parameters:
//   - path: optional YAML file path
//
// Returns:
//   - *Config: the merged configuration
//   - error: read, parse or validation failure
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv overlays OXY_VIEWER_* environment variables onto target.
// Unset variables leave the existing field values in place.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Model == "" {
		errs = append(errs, fmt.Errorf("%w: model is empty", ErrInvalid))
	}
	if len(c.Animations) == 0 {
		errs = append(errs, fmt.Errorf("%w: no animations", ErrInvalid))
	}
	if len(c.Animations) > MaxBindings {
		errs = append(errs, fmt.Errorf("%w: %d animations, at most %d can be bound to keys", ErrInvalid, len(c.Animations), MaxBindings))
	}

	seen := make(map[string]bool, len(c.Animations))
	for i, name := range c.Animations {
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("%w: animation %d has no name", ErrInvalid, i+1))
		case seen[name]:
			errs = append(errs, fmt.Errorf("%w: animation %q listed twice", ErrInvalid, name))
		}
		seen[name] = true
	}
	if c.DefaultAnimation != "" && !seen[c.DefaultAnimation] {
		errs = append(errs, fmt.Errorf("%w: default animation %q is not in the animation list", ErrInvalid, c.DefaultAnimation))
	}

	if c.FadeSeconds < 0 {
		errs = append(errs, fmt.Errorf("%w: fade_seconds must not be negative", ErrInvalid))
	}
	if _, err := ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("%w: background: %w", ErrInvalid, err))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers must be at least 1", ErrInvalid))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

// BackgroundColor returns the parsed background color, falling back to opaque black
// when the value does not parse. Validate reports the parse failure.
func (c *Config) BackgroundColor() Color {
	col, err := ParseColor(c.Background)
	if err != nil {
		return Color{A: 0xff}
	}
	return col
}

// ModelPath returns the model asset file path.
func (c *Config) ModelPath() string {
	return c.AssetPath(c.Model)
}

// AssetPath resolves an asset name to its file path.
func (c *Config) AssetPath(name string) string {
	return filepath.Join(c.AssetDir, name+c.Extension)
}
