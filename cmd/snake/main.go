// snake is a terminal snake game with a persistent high score.
//
// Usage:
//
//	snake                    - Play (same as snake play)
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the best runs
//	snake config             - Print the effective game configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <dsn>            - Score store: path.db, path.json or postgres:// DSN
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Where to write logs
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `A terminal snake game: eat food, grow, don't hit the walls or yourself.
Every five points the snake speeds up. Stars are worth three points and
light up the board for a few seconds.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard
  snake play --spectate :8080
  snake serve --ssh :2222 --db postgres://snake@localhost/snake
  snake scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Score store: SQLite path, *.json path, or postgres:// DSN")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.snake/snake.log for play, stderr for serve)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
