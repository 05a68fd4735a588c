package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// NewEngine creates an engine whose high score starts from store. store may be
// nil. A zero seed picks one from the clock. A failed load is logged and the
// game starts from zero. Saving new highs is the Model's job.
func NewEngine(cfg config.SnakeConfig, seed int64, store storage.Store, logger *log.Logger) (*snake.Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []snake.Option{snake.WithSeed(seed)}

	if store != nil {
		high, err := store.LoadHighScore()
		if err != nil {
			logger.Warn("cannot load high score", "error", err)
		}
		opts = append(opts, snake.WithHighScore(high))
	}

	return snake.NewEngine(cfg, opts...)
}
