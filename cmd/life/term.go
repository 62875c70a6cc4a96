package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mad-life/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the simulation in this terminal",
	Long: `Run the simulation in the current terminal. Each character is one cell,
so the grid takes the terminal size and --width, --height and --cell-size
are ignored.`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func runTerm(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	gridW, gridH := tui.GridSize(width, height)
	life, opts, err := tui.NewLocal(cfg, gridW, gridH)
	if err != nil {
		return err
	}
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	st, err := tui.Run(life, opts)
	if err != nil {
		return err
	}
	saveRun(store, "term", life, st)
	return nil
}
