package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistorySeed   int64
	flagInteractive   bool
	flagClearHistory  bool
	flagHistoryPreset string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display the most recent generation runs and per-preset statistics.

Only run statistics are recorded; a maze is reproduced from its seed.

Examples:
  maze history
  maze history --limit 50
  maze history --by-seed 42
  maze history --interactive`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().Int64Var(&flagHistorySeed, "by-seed", 0, "Only show runs of this seed")
	historyCmd.Flags().StringVar(&flagHistoryPreset, "by-preset", "", "Only show runs of this preset")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
	historyCmd.Flags().BoolVar(&flagClearHistory, "clear", false, "Delete every recorded run")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer store.Close()

	if flagClearHistory {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagInteractive {
		return browseHistory(store)
	}

	var runs []storage.Run
	switch {
	case flagHistorySeed != 0:
		runs, err = store.RunsBySeed(flagHistorySeed)
	case flagHistoryPreset != "":
		runs, err = store.RunsByPreset(flagHistoryPreset, flagHistoryLimit)
	default:
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'maze generate' to record the first one!")
		return nil
	}

	fmt.Printf("  %-11s  %-8s  %-7s  %-5s  %-6s  %-8s  %s\n",
		"Seed", "Preset", "Size", "Route", "Placed", "Isolated", "Date")
	fmt.Printf("  %-11s  %-8s  %-7s  %-5s  %-6s  %-8s  %s\n",
		"----", "------", "----", "-----", "------", "--------", "----")

	for _, r := range runs {
		fmt.Printf("  %-11d  %-8s  %-7s  %-5d  %-6d  %-8d  %s\n",
			r.Seed, r.Preset, fmt.Sprintf("%dx%d", r.Columns, r.Rows),
			r.PathLength, r.Placed, r.Isolated, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetAllPresetStats()
	if err != nil || len(stats) == 0 {
		return err
	}

	fmt.Println()
	fmt.Println("By preset")
	fmt.Println()
	for _, name := range []string{"easy", "normal", "hard", "perfect", "custom"} {
		ps, ok := stats[name]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %4d runs  avg route %5.1f  avg placed %6.1f  worst isolated %d\n",
			ps.Preset, ps.Runs, ps.AvgPath, ps.AvgPlaced, ps.MaxIsolated)
	}
	return nil
}

// browseHistory opens the table and prints the seed picked with enter.
func browseHistory(store *storage.Store) error {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	run, err := tui.RunHistory(store, width, height)
	if err != nil {
		return err
	}
	if run != nil {
		fmt.Println("Replay with: " + replayCommand(*run))
	}
	return nil
}

// replayCommand returns the generate invocation reproducing run.
// Custom runs carry no preset flag; their ratios come from the config.
func replayCommand(run storage.Run) string {
	cmd := fmt.Sprintf("maze generate --seed %d", run.Seed)
	if _, ok := config.ParsePreset(run.Preset); ok {
		cmd += " --preset " + run.Preset
	}
	return cmd
}
