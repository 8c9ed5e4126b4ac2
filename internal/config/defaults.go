package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Map: MapConfig{
			Width:  16,
			Height: 16,
		},
		Speed: SpeedConfig{
			MoveEveryTicks: 8,
		},
		Viewer: ViewerConfig{
			MovesPerSecond: 10,
		},
	}
}
