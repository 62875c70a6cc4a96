package tui

import (
	"mad-life/internal/config"
	"mad-life/internal/sim"
)

// NewLocal builds a Life for a terminal area of w×h characters. Terminal
// cells are the pixels here, so the configured pixel size and cell size are
// replaced by the terminal size and 1.
func NewLocal(cfg config.Config, w, h int) (*sim.Life, Options, error) {
	cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize = w, h, 1
	if err := cfg.Validate(); err != nil {
		return nil, Options{}, err
	}
	p, err := cfg.Palette()
	if err != nil {
		return nil, Options{}, err
	}
	r, err := cfg.Renderer(1)
	if err != nil {
		return nil, Options{}, err
	}
	life, err := sim.New(cfg.Sim(), r)
	if err != nil {
		return nil, Options{}, err
	}
	return life, Options{FPS: cfg.Playback.FPS, TPS: cfg.Playback.TPS, Background: p.Off}, nil
}
