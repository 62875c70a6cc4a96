// life runs Conway's Game of Life on a bounded grid.
//
// Usage:
//
//	life play            - Open the simulation in a desktop window (ebiten build)
//	life term            - Run the simulation in this terminal
//	life serve           - Start an SSH server, one simulation per session
//	life run             - Advance a seeded grid headlessly and print statistics
//	life runs            - Show recorded runs
//
// Global flags override values from the YAML config, see --help.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"mad-life/internal/config"
	"mad-life/internal/sim"
	"mad-life/internal/storage"
)

var (
	flags  config.Flags
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life on a bounded grid",
	Long: `life runs Conway's Game of Life on a bounded grid with an incrementally
maintained neighbour count cache.

Controls (window and terminal):
  Mouse drag - Bring cells to life
  Space      - Pause / resume
  Left/Right - Advance one generation while paused
  C          - Clear the grid
  R          - Scatter random live cells
  Q          - Quit

Examples:
  life play --cell-size 8
  life term --tps 20
  life serve --ssh :2222
  life run --generations 500 --seed 42 --png out.png
  life runs --longest`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags.Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(runsCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags.Apply(&loaded, cmd.Flags())
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mad-life",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.Wrapf(err, "[setup] log level %q", cfg.Log.Level)
	}
	logger.SetLevel(level)
	return nil
}

// newLife builds a Life from the loaded config.
func newLife(c config.Config) (*sim.Life, error) {
	r, err := c.Renderer(c.Grid.CellSize)
	if err != nil {
		return nil, err
	}
	return sim.New(c.Sim(), r)
}

// openStore opens the run history, or returns nil when storage is disabled
// or unavailable. A missing store never stops a simulation.
func openStore() *storage.Store {
	if !cfg.Storage.Enabled {
		return nil
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open run history", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}

// saveRun records a finished run when a store is available.
func saveRun(store *storage.Store, frontend string, life *sim.Life, st sim.Stats) {
	if store == nil {
		return
	}
	size := life.Size()
	id, err := store.SaveRun(storage.Run{
		Frontend:        frontend,
		Player:          os.Getenv("USER"),
		Rows:            size.H,
		Cols:            size.W,
		Seed:            life.Seed(),
		Generations:     st.Generation,
		PeakPopulation:  st.Peak,
		FinalPopulation: st.Population,
	})
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Debug("run recorded", "id", id, "generations", st.Generation)
}
