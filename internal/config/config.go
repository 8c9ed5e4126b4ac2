// Package config provides YAML-based configuration loading for the snake
// platform.
package config

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Map    MapConfig    `yaml:"map"`
	Speed  SpeedConfig  `yaml:"speed"`
	Viewer ViewerConfig `yaml:"viewer"`
}

// MapConfig defines the board dimensions in cells. Both sides are limited
// to 255 because the replay header stores them in a single byte each.
type MapConfig struct {
	Width  uint8 `yaml:"width"`
	Height uint8 `yaml:"height"`
}

// SpeedConfig defines how fast the snake moves during live play.
type SpeedConfig struct {
	// MoveEveryTicks is the number of simulation ticks between snake
	// moves at the default 60 ticks per second.
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// ViewerConfig defines replay playback behavior.
type ViewerConfig struct {
	// MovesPerSecond is the initial playback speed.
	MovesPerSecond int `yaml:"moves_per_second"`
}

// Validate reports whether the config can host a session.
func (c SnakeConfig) Validate() error {
	return validate(c)
}
