//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"mad-life/internal/sim"
)

const (
	// HUDHeight is the height of the status strip below the grid.
	HUDHeight      = 20
	panelPadding   = 6
	headerBaseline = 14
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudDim        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the status strip: generation, population and playback state.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width < 1 {
		width = 1
	}
	return &HUD{width: width}
}

// Draw paints the strip at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, st sim.Stats, paused bool) {
	if h == nil {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, HUDHeight)
	}
	h.panel.Fill(hudBackground)

	face := basicfont.Face7x13
	status := fmt.Sprintf("gen %d  pop %d  peak %d", st.Generation, st.Population, st.Peak)
	text.Draw(h.panel, status, face, panelPadding, headerBaseline, hudText)

	state := "running"
	if paused {
		state = "paused"
	}
	bounds := text.BoundString(face, state)
	text.Draw(h.panel, state, face, h.width-panelPadding-bounds.Dx(), headerBaseline, hudDim)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
