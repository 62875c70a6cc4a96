// Package config loads the YAML configuration for mad-life and applies
// command-line overrides on top of it.
package config

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/sim"
)

// Config is the complete application configuration.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Playback PlaybackConfig `yaml:"playback"`
	Render   RenderConfig   `yaml:"render"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// GridConfig sizes the board. Width and Height are in pixels; the grid has
// Width/CellSize columns and Height/CellSize rows.
type GridConfig struct {
	Width      int   `yaml:"width"`
	Height     int   `yaml:"height"`
	CellSize   int   `yaml:"cell_size"`
	SeedRandom bool  `yaml:"seed_random"`
	Seed       int64 `yaml:"seed"` // 0 = random based on time
}

// PlaybackConfig controls pacing and the initial pause state.
type PlaybackConfig struct {
	Paused bool `yaml:"paused"`
	TPS    int  `yaml:"tps"` // generations per second
	FPS    int  `yaml:"fps"` // terminal frames per second
}

// RenderConfig picks the renderer strategy and colours.
type RenderConfig struct {
	Strategy   string `yaml:"strategy"` // "full" or "dirty"
	Halo       int    `yaml:"halo"`
	Live       string `yaml:"live"`
	Background string `yaml:"background"`
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig sets the minimum log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:      900,
			Height:     900,
			CellSize:   4,
			SeedRandom: true,
		},
		Playback: PlaybackConfig{
			Paused: true,
			TPS:    10,
			FPS:    30,
		},
		Render: RenderConfig{
			Strategy:   render.StrategyDirty,
			Halo:       0,
			Live:       "#ff4444",
			Background: "#000000",
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.mad-life/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate rejects configurations that cannot build a grid or renderer.
func (c Config) Validate() error {
	if _, _, err := core.Dims(c.Grid.Width, c.Grid.Height, c.Grid.CellSize); err != nil {
		return errors.Wrapf(err, "[Validate] grid %dx%d px with cell size %d", c.Grid.Width, c.Grid.Height, c.Grid.CellSize)
	}
	if c.Playback.TPS <= 0 {
		return errors.Errorf("[Validate] playback.tps must be positive, got %d", c.Playback.TPS)
	}
	if c.Playback.FPS <= 0 {
		return errors.Errorf("[Validate] playback.fps must be positive, got %d", c.Playback.FPS)
	}
	switch c.Render.Strategy {
	case render.StrategyFull, render.StrategyDirty:
	default:
		return errors.Errorf("[Validate] render.strategy must be %q or %q, got %q", render.StrategyFull, render.StrategyDirty, c.Render.Strategy)
	}
	if c.Render.Halo < 0 {
		return errors.Errorf("[Validate] render.halo must not be negative, got %d", c.Render.Halo)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the configured colours.
func (c Config) Palette() (render.Palette, error) {
	on, err := ParseColor(c.Render.Live)
	if err != nil {
		return render.Palette{}, errors.Wrap(err, "[Palette] render.live")
	}
	off, err := ParseColor(c.Render.Background)
	if err != nil {
		return render.Palette{}, errors.Wrap(err, "[Palette] render.background")
	}
	return render.Palette{On: on, Off: off}, nil
}

// Renderer builds the configured renderer for the given cell size.
func (c Config) Renderer(cellSize int) (render.Renderer, error) {
	p, err := c.Palette()
	if err != nil {
		return nil, err
	}
	r, err := render.New(c.Render.Strategy, cellSize, p)
	if err != nil {
		return nil, errors.Wrap(err, "[Renderer]")
	}
	return r, nil
}

// Sim converts the grid and playback sections into a simulation config.
func (c Config) Sim() sim.Config {
	return sim.Config{
		PixelW:     c.Grid.Width,
		PixelH:     c.Grid.Height,
		CellSize:   c.Grid.CellSize,
		Paused:     c.Playback.Paused,
		SeedRandom: c.Grid.SeedRandom,
		Seed:       c.Grid.Seed,
		Halo:       c.Render.Halo,
	}
}

// ParseColor parses a "#rrggbb" colour into an opaque RGBA value.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "[ParseColor] invalid colour %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
