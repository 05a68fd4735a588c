package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/spectate"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagSpectate string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL  - Steer
  Space/P           - Pause
  R                 - Restart
  Ctrl+S            - Screenshot to ~/.snake/screenshots
  ?                 - Toggle full help
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower start, gentler speed-up, more stars
  normal - The configured values
  hard   - Faster start, steeper speed-up, shorter star effect
  fixed  - No speed-up

Spectating:
  --spectate :8080 streams every frame as JSON to websocket viewers at
  ws://host:8080/ws.

Examples:
  snake play
  snake play --difficulty hard
  snake play --config ./my-snake.yaml
  snake play --seed 42 --spectate :8080`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8080)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logFile := flagLogFile
	if logFile == "" {
		logFile = snakeDir("snake.log")
	}
	logger, closer, err := newLogger(logFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if minW, minH := snake.MinScreenSize(cfg.Board.Size); width < minW || height < minH {
		logger.Warn("terminal smaller than board", "have", fmt.Sprintf("%dx%d", width, height), "need", fmt.Sprintf("%dx%d", minW, minH))
	}

	// Storage is best-effort: the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores store: %v\n", err)
		logger.Warn("could not open scores store", "dsn", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	engine, err := tui.NewEngine(cfg, flagSeed, store, logger)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Logger:        logger,
		ScreenshotDir: snakeDir("screenshots"),
	}
	if store != nil {
		opts.Store = store
	}

	if flagSpectate != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		hub := spectate.NewHub(logger)
		addr, err := spectate.Serve(ctx, flagSpectate, hub)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Spectators can watch at ws://%s/ws\n", addr)
		opts.Publisher = hub
	}

	logger.Info("game started", "board", cfg.Board.Size, "difficulty", flagDifficulty, "seed", flagSeed)
	runtime := core.RuntimeConfig{ScreenW: width, ScreenH: height}
	if err := tui.Run(engine, runtime, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("game closed", "high_score", engine.HighScore())
	return nil
}
