package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/vania/internal/config"
)

var (
	flagCfgPath       string
	flagCfgDifficulty string
	flagCfgEffective  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Prints the built-in default configuration as YAML. Save it to
~/.vania/configs/vania.yaml or ./configs/vania.yaml to customise the game.

With --effective, prints the configuration the game would actually use after
applying the config search path and the difficulty preset.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCfgPath, "config", "", "Path to custom game config YAML (with --effective)")
	configCmd.Flags().StringVar(&flagCfgDifficulty, "difficulty", "", "Difficulty preset to apply (with --effective)")
	configCmd.Flags().BoolVar(&flagCfgEffective, "effective", false, "Print the resolved configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !flagCfgEffective {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	preset, err := config.ParsePreset(flagCfgDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadVania(flagCfgPath)
	if err != nil {
		return err
	}
	config.ApplyVaniaPreset(&cfg, preset)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	_, err = out.Write(data)
	return err
}
