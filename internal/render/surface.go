// Package render paints a life grid onto a drawing surface. Two strategies
// share the same surface contract: Full repaints every live cell each frame
// and Dirty repaints only the cells the tracker reports as changed.
package render

import (
	"fmt"
	"image/color"

	"mad-life/internal/core"
)

// Surface is the drawing capability a frontend provides.
type Surface interface {
	// Fill paints the whole surface with c.
	Fill(c color.Color)
	// DrawRect paints the w×h rectangle whose top-left corner is (x, y).
	DrawRect(c color.Color, x, y, w, h int)
}

// Palette holds the colours used for live and dead cells.
type Palette struct {
	On  color.Color
	Off color.Color
}

// DefaultPalette paints live cells red on black.
func DefaultPalette() Palette {
	return Palette{
		On:  color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff},
		Off: color.Black,
	}
}

// Renderer draws a grid onto a surface once per frame.
type Renderer interface {
	Draw(dst Surface, g *core.Grid)
	// Invalidate forces the next Draw to repaint the whole grid.
	Invalidate()
}

// Strategy names accepted by New.
const (
	StrategyFull  = "full"
	StrategyDirty = "dirty"
)

// New returns the renderer registered under strategy.
func New(strategy string, cellSize int, p Palette) (Renderer, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("render: cell size must be positive, got %d", cellSize)
	}
	switch strategy {
	case StrategyFull, "":
		return &Full{CellSize: cellSize, Palette: p}, nil
	case StrategyDirty:
		return &Dirty{CellSize: cellSize, Palette: p}, nil
	default:
		return nil, fmt.Errorf("render: unknown strategy %q", strategy)
	}
}
