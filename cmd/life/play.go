package main

import (
	"github.com/spf13/cobra"

	"mad-life/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the simulation in a desktop window",
	Long: `Open a window of --width x --height pixels divided into cells of
--cell-size pixels. G toggles grid lines. The window requires a build with
the 'ebiten' tag:

  go build -tags ebiten ./cmd/life`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	life, err := newLife(cfg)
	if err != nil {
		return err
	}
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	size := life.Size()
	logger.Info("opening window", "rows", size.H, "cols", size.W, "seed", life.Seed(), "renderer", cfg.Render.Strategy)
	st, err := app.Run(life, app.Options{Title: "mad-life", TPS: cfg.Playback.TPS})
	if err != nil {
		return err
	}
	saveRun(store, "gui", life, st)
	return nil
}
