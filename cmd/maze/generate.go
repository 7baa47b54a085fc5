package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagFormat   string
	flagCopy     bool
	flagNoRecord bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one maze and print it",
	Long: `Run the generator once and write the result to stdout.

The run's seed and statistics are logged to stderr and recorded in the
run log unless --no-record is given. Replaying a seed with the same
config reproduces the maze exactly.

Examples:
  maze generate
  maze generate --seed 42
  maze generate --format list
  maze generate --preset perfect --format yaml > maze.yaml
  maze generate --copy`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagFormat, "format", "f", "ascii", "Output format (see 'maze formats')")
	generateCmd.Flags().BoolVar(&flagCopy, "copy", false, "Also copy the output to the clipboard")
	generateCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the run")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	if !registry.Exists(flagFormat) {
		return fmt.Errorf("unknown format %q, run 'maze formats' to see available formats", flagFormat)
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := registry.Create(flagFormat)
	if err != nil {
		return err
	}

	prefab := maze.BoxPrefab{Width: cfg.Prefab.Width, Height: cfg.Prefab.Height}
	gen := maze.NewGenerator(cfg, prefab, format, logger)
	res := gen.Generate()

	logger.Info("generated",
		"seed", res.Seed,
		"size", fmt.Sprintf("%dx%d", res.Columns, res.Rows),
		"route", res.PathLength(),
		"placed", res.Placed,
		"isolated", res.Stats.Isolated,
	)

	if flagCopy {
		var buf bytes.Buffer
		if err := format.Write(&buf, res); err != nil {
			return fmt.Errorf("render %s: %w", flagFormat, err)
		}
		if err := clipboard.WriteAll(buf.String()); err != nil {
			logger.Warn("could not copy to clipboard", "error", err)
		}
		if _, err := buf.WriteTo(os.Stdout); err != nil {
			return err
		}
	} else if err := format.Write(os.Stdout, res); err != nil {
		return fmt.Errorf("render %s: %w", flagFormat, err)
	}

	if !flagNoRecord {
		recordRun(res, presetLabel(preset), "cli")
	}
	return nil
}

// recordRun appends res to the run log. Failures only warn.
func recordRun(res maze.Result, preset, source string) {
	logger := newLogger()
	if flagDBPath == "" {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.NewRun(res, preset, source)); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}
