package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"mad-life/internal/storage"
)

var (
	flagLimit   int
	flagLongest bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `List runs recorded by play, term, serve and run, newest first.

Examples:
  life runs
  life runs --longest --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "number of runs to show")
	runsCmd.Flags().BoolVar(&flagLongest, "longest", false, "order by generations instead of date")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return errors.Wrap(err, "[runRuns] open run history")
	}
	defer store.Close()

	var runs []storage.Run
	if flagLongest {
		runs, err = store.LongestRuns(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}
	fmt.Fprintln(out, runsTable(runs))
	return nil
}

func runsTable(runs []storage.Run) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Date", "Frontend", "Player", "Grid", "Seed", "Gens", "Peak", "Final").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, r := range runs {
		t.Row(
			fmt.Sprint(r.ID),
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Frontend,
			r.Player,
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			fmt.Sprint(r.Seed),
			fmt.Sprint(r.Generations),
			fmt.Sprint(r.PeakPopulation),
			fmt.Sprint(r.FinalPopulation),
		)
	}
	return t
}
