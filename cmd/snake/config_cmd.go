package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would start with, after the config
file search and the difficulty preset.

Config files are searched in this order:
  --config <path>
  ~/.snake/configs/snake.yaml
  ./configs/snake.yaml
  built-in defaults

Examples:
  snake config
  snake config --difficulty hard
  snake config --default > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default file, with comments")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagShowDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
