package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gravity-runner/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner configuration",
	Long: `Print the embedded default configuration, ready to be saved as
~/.gravity-runner/configs/runner.yaml and edited.

With --effective, print the configuration after loading --config and
applying --difficulty instead.

Examples:
  runner config > ~/.gravity-runner/configs/runner.yaml
  runner config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded config with the preset applied")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	name := flagDifficulty
	if name == "" {
		name = string(cfg.Difficulty.Preset)
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
