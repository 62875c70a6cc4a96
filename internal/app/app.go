//go:build ebiten

// Package app runs the simulation in a desktop window with ebiten.
package app

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mad-life/internal/core"
	"mad-life/internal/sim"
	"mad-life/internal/ui"
)

// Options configures the window.
type Options struct {
	Title string
	TPS   int // generations per second while running
}

// keyBindings maps released keys to simulation keys.
var keyBindings = []struct {
	key ebiten.Key
	sim sim.Key
}{
	{ebiten.KeySpace, sim.KeySpace},
	{ebiten.KeyArrowLeft, sim.KeyLeft},
	{ebiten.KeyArrowRight, sim.KeyRight},
	{ebiten.KeyC, sim.KeyClear},
	{ebiten.KeyR, sim.KeyRandom},
}

// Game adapts a Life to the ebiten.Game interface.
type Game struct {
	life    *sim.Life
	canvas  *canvas
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	w, h             int
	cursorX, cursorY int
	events           []sim.Event
}

// New constructs a Game for life.
func New(life *sim.Life, tps int) *Game {
	size := life.Size()
	cell := life.CellSize()
	w, h := size.W*cell, size.H*cell
	return &Game{
		life:    life,
		canvas:  newCanvas(w, h),
		hud:     ui.NewHUD(w),
		overlay: ui.NewOverlay(size.H, size.W, cell),
		pacer:   core.NewFixedStep(tps),
		w:       w,
		h:       h,
		cursorX: -1,
		cursorY: -1,
	}
}

// Update collects input, applies it and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.collectPointer()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustReleased(b.key) {
			g.events = append(g.events, sim.Event{Type: sim.KeyUp, Key: b.sim})
		}
	}
	g.overlay.Update()

	for _, ev := range g.events {
		g.life.HandleEvent(ev)
	}
	g.events = g.events[:0]

	if g.pacer.ShouldStep() {
		g.life.Update()
	}
	return nil
}

func (g *Game) collectPointer() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.events = append(g.events, sim.Event{Type: sim.PointerDown, X: x, Y: y})
	}
	if x != g.cursorX || y != g.cursorY {
		g.events = append(g.events, sim.Event{Type: sim.PointerMove, X: x, Y: y})
		g.cursorX, g.cursorY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.events = append(g.events, sim.Event{Type: sim.PointerUp, X: x, Y: y})
	}
}

// Draw renders the current generation, the overlay and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	g.life.Draw(g.canvas)
	screen.DrawImage(g.canvas.img, nil)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.h, g.life.Stats(), g.life.Paused())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h + ui.HUDHeight
}

// Run opens a window for life and blocks until it is closed. It returns the
// statistics at exit.
func Run(life *sim.Life, opts Options) (sim.Stats, error) {
	game := New(life, opts.TPS)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return life.Stats(), err
	}
	return life.Stats(), nil
}
