package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size:          20,
			InitialLength: 3,
		},
		Speed: SpeedConfig{
			InitialMs:      200,
			IncrementMs:    15,
			MinMs:          50,
			PointsPerLevel: 5,
		},
		PowerUp: PowerUpConfig{
			Chance:     0.10,
			DurationMs: 5000,
			Bonus:      3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
