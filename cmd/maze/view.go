package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse mazes interactively",
	Long: `Open the interactive viewer.

Controls:
  N/Space  - New seed
  R        - Rebuild the current seed
  Tab      - Next difficulty preset
  P        - Show/hide the guaranteed route
  C        - Copy the maze to the clipboard
  H        - Run history (Enter replays a seed)
  Q/Ctrl+C - Quit

Examples:
  maze view
  maze view --preset hard
  maze view --seed 42 --config ./big.yaml`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func runView(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	logger := newLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage - the viewer still works
		store = nil
	}

	runErr := tui.Run(cfg, rc, tui.Options{
		Preset:    preset,
		Source:    "tui",
		Store:     store,
		Logger:    logger,
		Clipboard: tui.SystemClipboard,
	})

	if store != nil {
		store.Close()
	}
	return runErr
}
