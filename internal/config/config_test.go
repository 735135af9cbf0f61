package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "Paladin J Nordstrom" {
		t.Fatalf("model = %q", cfg.Model)
	}
	if len(cfg.Animations) != 6 || cfg.Animations[0] != "Texting While Standing" || cfg.Animations[5] != "Silly Dancing" {
		t.Fatalf("animations = %v", cfg.Animations)
	}
	if cfg.FadeSeconds != 0.25 {
		t.Fatalf("fade = %v", cfg.FadeSeconds)
	}
	if got := cfg.BackgroundColor(); got != (Color{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}) {
		t.Fatalf("background = %v", got)
	}
	if want := filepath.Join("models", "gltf", "Paladin J Nordstrom.glb"); cfg.ModelPath() != want {
		t.Fatalf("ModelPath = %q, want %q", cfg.ModelPath(), want)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := writeYAML(t, `
model: Fox
animations: [Survey, Walk, Run]
default_animation: Survey
fade_seconds: 0.5
window:
  title: fox
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "Fox" || cfg.DefaultAnimation != "Survey" || cfg.FadeSeconds != 0.5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !slices.Equal(cfg.Animations, []string{"Survey", "Walk", "Run"}) {
		t.Fatalf("animations = %v", cfg.Animations)
	}
	if cfg.Window.Title != "fox" || cfg.Window.Width != 1280 {
		t.Fatalf("window = %+v, want title overlaid on default size", cfg.Window)
	}
	if cfg.Extension != ".glb" {
		t.Fatalf("unset fields should keep defaults, extension = %q", cfg.Extension)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, "model: Fox\nworkers: 2\n")
	t.Setenv("OXY_VIEWER_MODEL", "Paladin")
	t.Setenv("OXY_VIEWER_ANIMATIONS", "Idle,Walk")
	t.Setenv("OXY_VIEWER_BACKGROUND", "#102030")
	t.Setenv("OXY_VIEWER_WINDOW_WIDTH", "640")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "Paladin" {
		t.Fatalf("model = %q, env should win", cfg.Model)
	}
	if cfg.Workers != 2 {
		t.Fatalf("workers = %d, YAML value should survive", cfg.Workers)
	}
	if !slices.Equal(cfg.Animations, []string{"Idle", "Walk"}) {
		t.Fatalf("animations = %v", cfg.Animations)
	}
	if got := cfg.BackgroundColor(); got != (Color{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Fatalf("background = %v", got)
	}
	if cfg.Window.Width != 640 {
		t.Fatalf("window width = %d", cfg.Window.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("bad yaml", func(t *testing.T) {
		if _, err := Load(writeYAML(t, "animations: {")); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("bad env", func(t *testing.T) {
		t.Setenv("OXY_VIEWER_WORKERS", "many")
		_, err := Load("")
		if err == nil || !strings.Contains(err.Error(), "parse env:") {
			t.Fatalf("expected parse env error, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty model", mutate: func(c *Config) { c.Model = "" }},
		{name: "no animations", mutate: func(c *Config) { c.Animations = nil }},
		{name: "too many animations", mutate: func(c *Config) {
			c.Animations = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
		}},
		{name: "duplicate animation", mutate: func(c *Config) { c.Animations = []string{"Walk", "Walk"} }},
		{name: "blank animation", mutate: func(c *Config) { c.Animations = []string{"Walk", ""} }},
		{name: "unknown default", mutate: func(c *Config) { c.DefaultAnimation = "Moonwalk" }},
		{name: "negative fade", mutate: func(c *Config) { c.FadeSeconds = -1 }},
		{name: "no workers", mutate: func(c *Config) { c.Workers = 0 }},
		{name: "bad background", mutate: func(c *Config) { c.Background = "grey" }},
		{name: "zero window", mutate: func(c *Config) { c.Window.Height = 0 }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidateNineBindings(t *testing.T) {
	cfg := Default()
	cfg.Animations = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	cfg.FadeSeconds = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("nine animations with zero fade should validate: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#a0a0a0", want: Color{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}},
		{in: "ff000080", want: Color{R: 0xff, A: 0x80}},
		{in: "#abc", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseColor(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}

	if s := (Color{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}).String(); s != "#a0a0a0" {
		t.Fatalf("String() = %q", s)
	}
	if r, _, _, a := (Color{R: 0xff, A: 0xff}).Float(); r != 1 || a != 1 {
		t.Fatalf("Float() = %v, %v", r, a)
	}
}
