// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	PowerUp PowerUpConfig `yaml:"power_up"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size          int `yaml:"size"`
	InitialLength int `yaml:"initial_length"`
}

// SpeedConfig defines the tick interval curve.
type SpeedConfig struct {
	InitialMs      int `yaml:"initial_ms"`
	IncrementMs    int `yaml:"increment_ms"`
	MinMs          int `yaml:"min_ms"`
	PointsPerLevel int `yaml:"points_per_level"`
}

// PowerUpConfig defines power-up spawning and its effect.
type PowerUpConfig struct {
	Chance     float64 `yaml:"chance"`
	DurationMs int     `yaml:"duration_ms"`
	Bonus      int     `yaml:"bonus"`
}

// Initial returns the level 1 tick interval.
func (s SpeedConfig) Initial() time.Duration {
	return time.Duration(s.InitialMs) * time.Millisecond
}

// Increment returns the per-level interval reduction.
func (s SpeedConfig) Increment() time.Duration {
	return time.Duration(s.IncrementMs) * time.Millisecond
}

// Floor returns the minimum tick interval.
func (s SpeedConfig) Floor() time.Duration {
	return time.Duration(s.MinMs) * time.Millisecond
}

// Duration returns how long a power-up effect lasts.
func (p PowerUpConfig) Duration() time.Duration {
	return time.Duration(p.DurationMs) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Size < 5:
		return fmt.Errorf("%w: board.size must be at least 5, got %d", ErrInvalidConfig, c.Board.Size)
	case c.Board.InitialLength < 1:
		return fmt.Errorf("%w: board.initial_length must be positive, got %d", ErrInvalidConfig, c.Board.InitialLength)
	case c.Board.Size/2+c.Board.InitialLength > c.Board.Size:
		return fmt.Errorf("%w: board.initial_length %d does not fit a %dx%d board",
			ErrInvalidConfig, c.Board.InitialLength, c.Board.Size, c.Board.Size)
	case c.Speed.InitialMs <= 0:
		return fmt.Errorf("%w: speed.initial_ms must be positive, got %d", ErrInvalidConfig, c.Speed.InitialMs)
	case c.Speed.MinMs <= 0:
		return fmt.Errorf("%w: speed.min_ms must be positive, got %d", ErrInvalidConfig, c.Speed.MinMs)
	case c.Speed.MinMs > c.Speed.InitialMs:
		return fmt.Errorf("%w: speed.min_ms %d exceeds speed.initial_ms %d", ErrInvalidConfig, c.Speed.MinMs, c.Speed.InitialMs)
	case c.Speed.IncrementMs < 0:
		return fmt.Errorf("%w: speed.increment_ms must not be negative, got %d", ErrInvalidConfig, c.Speed.IncrementMs)
	case c.Speed.PointsPerLevel <= 0:
		return fmt.Errorf("%w: speed.points_per_level must be positive, got %d", ErrInvalidConfig, c.Speed.PointsPerLevel)
	case c.PowerUp.Chance < 0 || c.PowerUp.Chance > 1:
		return fmt.Errorf("%w: power_up.chance must be within [0, 1], got %g", ErrInvalidConfig, c.PowerUp.Chance)
	case c.PowerUp.DurationMs < 0:
		return fmt.Errorf("%w: power_up.duration_ms must not be negative, got %d", ErrInvalidConfig, c.PowerUp.DurationMs)
	case c.PowerUp.Bonus < 0:
		return fmt.Errorf("%w: power_up.bonus must not be negative, got %d", ErrInvalidConfig, c.PowerUp.Bonus)
	}
	return nil
}
