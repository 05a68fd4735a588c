// Package storage persists the snake high score and the history of finished runs.
// Backends register themselves by name and are selected from a DSN by Open.
package storage

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidScore is returned when a negative score is saved.
var ErrInvalidScore = errors.New("storage: invalid score")

// DefaultTopRuns is the limit TopRuns uses when given a non-positive one.
const DefaultTopRuns = 10

// Run is one finished game.
type Run struct {
	ID        int64         `json:"id"`
	SessionID string        `json:"session_id"`
	Score     int           `json:"score"`
	Level     int           `json:"level"`
	Length    int           `json:"length"`
	Ticks     uint64        `json:"ticks"`
	Duration  time.Duration `json:"duration"`
	Collision string        `json:"collision"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store is the persistence boundary used by the game front-ends.
type Store interface {
	// LoadHighScore returns the best score ever saved, or 0.
	LoadHighScore() (int, error)

	// SaveHighScore records score if it beats the stored value.
	// The stored value never decreases.
	SaveHighScore(score int) error

	// SaveRun appends a finished run and returns its ID.
	SaveRun(run Run) (int64, error)

	// TopRuns returns up to limit runs, best score first.
	TopRuns(limit int) ([]Run, error)

	Close() error
}

func validateScore(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}
	return nil
}

// prepareRun checks run and fills in a creation time, truncated to the
// second so every backend round-trips it identically.
func prepareRun(run Run) (Run, error) {
	if err := validateScore(run.Score); err != nil {
		return run, err
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC().Truncate(time.Second)
	return run, nil
}

const sqlTimeLayout = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string values coming back from SQL drivers.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		for _, layout := range []string{sqlTimeLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC()
			}
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
