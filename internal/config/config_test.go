package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"mad-life/internal/core"
	"mad-life/internal/render"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := Config{}
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("embedded defaults %+v differ from DefaultConfig %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadCustomPathMergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	data := []byte("grid:\n  cell_size: 8\nrender:\n  strategy: full\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.CellSize != 8 || cfg.Render.Strategy != "full" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Grid.Width != 900 || cfg.Playback.TPS != 10 {
		t.Fatalf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit config")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero cell size":     func(c *Config) { c.Grid.CellSize = 0 },
		"negative width":     func(c *Config) { c.Grid.Width = -10 },
		"narrower than cell": func(c *Config) { c.Grid.Width = 3 },
		"zero tps":           func(c *Config) { c.Playback.TPS = 0 },
		"zero fps":           func(c *Config) { c.Playback.FPS = 0 },
		"unknown strategy":   func(c *Config) { c.Render.Strategy = "sparkle" },
		"negative halo":      func(c *Config) { c.Render.Halo = -1 },
		"bad colour":         func(c *Config) { c.Render.Live = "red-ish" },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected Validate to fail", name)
		}
	}
}

func TestValidateWrapsDimensionError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Height = 0
	if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("err=%v, expected to wrap ErrInvalidDimensions", err)
	}
}

func TestPaletteParsesHex(t *testing.T) {
	p, err := DefaultConfig().Palette()
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if p.On != (color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}) {
		t.Fatalf("On=%v", p.On)
	}
	if p.Off != (color.RGBA{A: 0xff}) {
		t.Fatalf("Off=%v", p.Off)
	}
}

func TestRendererFollowsStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.Strategy = "full"
	r, err := cfg.Renderer(4)
	if err != nil {
		t.Fatalf("Renderer: %v", err)
	}
	if _, ok := r.(*render.Full); !ok {
		t.Fatalf("Renderer returned %T", r)
	}
}

func TestSimConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Seed = 9
	cfg.Render.Halo = 2
	s := cfg.Sim()
	if s.PixelW != 900 || s.CellSize != 4 || !s.Paused || s.Seed != 9 || s.Halo != 2 || !s.SeedRandom {
		t.Fatalf("Sim()=%+v", s)
	}
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var f Flags
	f.Bind(fs)
	if err := fs.Parse([]string{"--cell-size=2", "--paused=false", "--empty"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Grid.Width = 640 // as if loaded from a file
	f.Apply(&cfg, fs)

	if cfg.Grid.CellSize != 2 {
		t.Fatalf("cell size=%d, expected 2", cfg.Grid.CellSize)
	}
	if cfg.Playback.Paused {
		t.Fatal("expected --paused=false to start running")
	}
	if cfg.Grid.SeedRandom {
		t.Fatal("expected --empty to disable seeding")
	}
	if cfg.Grid.Width != 640 {
		t.Fatalf("width=%d, unset flag must not override the file", cfg.Grid.Width)
	}
}
