//go:build !ebiten

package app

import (
	"errors"

	"mad-life/internal/sim"
)

// ErrNoGUI is returned when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("GUI support requires building with the 'ebiten' tag")

// Options configures the window.
type Options struct {
	Title string
	TPS   int
}

// Run reports that the GUI is unavailable in this build.
func Run(life *sim.Life, opts Options) (sim.Stats, error) {
	return life.Stats(), ErrNoGUI
}
