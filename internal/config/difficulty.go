package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialMs = max(cfg.Speed.InitialMs, 250)
		cfg.Speed.IncrementMs = min(cfg.Speed.IncrementMs, 10)
		cfg.PowerUp.Chance = min(1, cfg.PowerUp.Chance*2)
	case DifficultyHard:
		cfg.Speed.InitialMs = max(cfg.Speed.MinMs, cfg.Speed.InitialMs*3/4)
		cfg.Speed.IncrementMs += 5
		cfg.PowerUp.DurationMs /= 2
	case DifficultyFixed:
		cfg.Speed.IncrementMs = 0
	}
}

// SpeedCurve computes tick intervals as the level rises.
// The interval only ever shrinks and never drops below the floor.
type SpeedCurve struct {
	initial   time.Duration
	increment time.Duration
	floor     time.Duration
	perLevel  int
}

// NewSpeedCurve creates a speed curve from the speed config.
func NewSpeedCurve(cfg SpeedConfig) SpeedCurve {
	perLevel := cfg.PointsPerLevel
	if perLevel <= 0 {
		perLevel = 1 // Prevent division by zero
	}
	return SpeedCurve{
		initial:   cfg.Initial(),
		increment: cfg.Increment(),
		floor:     cfg.Floor(),
		perLevel:  perLevel,
	}
}

// Initial returns the level 1 interval.
func (c SpeedCurve) Initial() time.Duration {
	return c.initial
}

// Next returns the interval after one level-up from current.
func (c SpeedCurve) Next(current time.Duration) time.Duration {
	if current <= c.floor {
		return current
	}
	return max(current-c.increment, c.floor)
}

// LevelUps returns how many multiples of the per-level threshold lie in (from, to].
func (c SpeedCurve) LevelUps(from, to int) int {
	if to <= from {
		return 0
	}
	return to/c.perLevel - from/c.perLevel
}
