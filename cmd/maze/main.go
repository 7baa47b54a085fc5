// maze is a procedural maze generator for the terminal.
//
// Usage:
//
//	maze generate            - Generate one maze and print it
//	maze view                - Browse mazes interactively
//	maze serve               - Start SSH server for remote viewing
//	maze history             - Show recorded runs
//	maze formats             - List output formats
//	maze config              - Print the effective configuration
//
// Global flags:
//
//	--seed <value>    - Fixed RNG seed (0 = use the config)
//	--config <path>   - Custom maze config YAML
//	--preset <name>   - Difficulty preset: easy, normal, hard, perfect
//	--db <path>       - Run log path (default: ~/.maze/runs.db)
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"

	// Import formats to register them
	_ "github.com/vovakirdan/tui-maze/internal/formats"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagPreset  string
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - procedural mazes in your terminal",
	Long: `Maze builds grid mazes with a randomized backtracker, roughens them
with extra walls and loop passages, keeps the player, enemy and goal
areas clear, and guarantees a route from player to goal.

Available commands:
  generate - Generate one maze and print it
  view     - Browse mazes interactively
  serve    - Start SSH server for remote viewing
  history  - Show recorded runs
  formats  - List output formats
  config   - Print the effective configuration

Examples:
  maze generate
  maze generate --seed 42 --format yaml
  maze view --preset hard
  maze serve --ssh :2222
  maze history`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use the config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, perfect")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/runs.db", "Path to run log database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the maze config from --config, --preset and --seed.
// The returned preset is empty when --preset was not given.
func loadConfig() (config.MazeConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return config.MazeConfig{}, "", err
	}

	var preset config.DifficultyPreset
	if flagPreset != "" {
		p, ok := config.ParsePreset(flagPreset)
		if !ok {
			return config.MazeConfig{}, "", fmt.Errorf("unknown preset %q (want easy, normal, hard or perfect)", flagPreset)
		}
		preset = p
		config.ApplyMazePreset(&cfg, preset)
	}

	if flagSeed != 0 {
		cfg.Seed = config.SeedConfig{Value: flagSeed}
	}

	return cfg, preset, nil
}

// presetLabel names a preset for the run log.
func presetLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "custom"
	}
	return string(p)
}
