package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-maze/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the maze configuration after --config, --preset and --seed are
applied and every value is clamped into its valid range. Corrections are
logged as warnings.

With --defaults, prints the built-in defaults instead, which is a good
starting point for a custom file:

  maze config --defaults > ~/.maze/configs/maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default YAML")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger()
	for _, note := range cfg.Normalize() {
		logger.Warn("config corrected", "field", note)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
